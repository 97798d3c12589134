package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aishield/api/internal/models"
	"aishield/api/internal/service"
)

type scanRequestBody struct {
	URL         string   `json:"url"`
	ContentType string   `json:"contentType"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
	Purposes    []string `json:"purposes"`
	Priority    string   `json:"priority"`
}

func (h HandlerSet) CreateScanRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body scanRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "success": false})
		return
	}

	req, err := h.scanService.CreateRequest(c.Request.Context(), user, service.ScanRequestInput{
		URL:         body.URL,
		ContentType: body.ContentType,
		Description: body.Description,
		Platforms:   body.Platforms,
		Purposes:    body.Purposes,
		Priority:    body.Priority,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "success": false})
			return
		}
		h.log.Error().Err(err).Msg("create scan request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "success": true})
}

type scanRequestResponse struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	ContentType string     `json:"contentType"`
	Description string     `json:"description"`
	Platforms   []string   `json:"platforms"`
	Purposes    []string   `json:"purposes"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (h HandlerSet) ListScanRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.scanService.ListRequests(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list scan requests failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := make([]scanRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, toScanRequestResponse(req))
	}
	c.JSON(http.StatusOK, gin.H{"scanRequests": resp})
}

type scanResultResponse struct {
	ID            string    `json:"id"`
	ScanRequestID string    `json:"scanRequestId"`
	Result        string    `json:"result"`
	Score         string    `json:"score"`
	DetectionType string    `json:"detectionType"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (h HandlerSet) ListScanResults(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	results, err := h.scanService.ListResults(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list scan results failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := make([]scanResultResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, scanResultResponse{
			ID:            res.ID,
			ScanRequestID: res.ScanRequestID,
			Result:        res.Result,
			Score:         res.Score,
			DetectionType: res.DetectionType,
			CreatedAt:     res.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"scanResults": resp})
}

func toScanRequestResponse(req models.ScanRequest) scanRequestResponse {
	return scanRequestResponse{
		ID:          req.ID,
		URL:         req.URL,
		ContentType: string(req.ContentType),
		Description: req.Description,
		Platforms:   req.Platforms,
		Purposes:    req.Purposes,
		Priority:    req.Priority,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		CompletedAt: req.CompletedAt,
	}
}
