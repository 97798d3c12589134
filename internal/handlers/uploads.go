package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aishield/api/internal/service"
)

func (h HandlerSet) Upload(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		User:   user,
		File:   file,
		Header: header,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      result.Upload.ID,
		"url":     result.URL,
		"success": true,
	})
}

type uploadResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h HandlerSet) ListUploads(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uploads, err := h.uploadService.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list uploads failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := make([]uploadResponse, 0, len(uploads))
	for _, u := range uploads {
		resp = append(resp, uploadResponse{
			ID:          u.ID,
			FileName:    u.FileName,
			ContentType: u.ContentType,
			SizeBytes:   u.SizeBytes,
			URL:         h.uploadService.PublicURL(u.ObjectKey),
			CreatedAt:   u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"uploads": resp})
}
