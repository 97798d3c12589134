package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aishield/api/internal/service"
)

type takedownRequestBody struct {
	URL          string `json:"url"`
	ScanResultID string `json:"scanResultId"`
	Notes        string `json:"notes"`
}

func (h HandlerSet) CreateTakedownRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body takedownRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "success": false})
		return
	}

	req, err := h.takedownService.CreateRequest(c.Request.Context(), user, service.TakedownInput{
		URL:          body.URL,
		ScanResultID: body.ScanResultID,
		Notes:        body.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "success": false})
			return
		}
		h.log.Error().Err(err).Msg("create takedown request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "success": true})
}

type takedownResponse struct {
	ID           string     `json:"id"`
	URL          string     `json:"url"`
	ScanResultID *string    `json:"scanResultId,omitempty"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func (h HandlerSet) ListTakedownRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.takedownService.ListRequests(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list takedown requests failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := make([]takedownResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, takedownResponse{
			ID:           req.ID,
			URL:          req.URL,
			ScanResultID: req.ScanResultID,
			Status:       string(req.Status),
			Notes:        req.Notes,
			CreatedAt:    req.CreatedAt,
			CompletedAt:  req.CompletedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"takedownRequests": resp})
}
