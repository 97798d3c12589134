package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"aishield/api/internal/ids"
	"aishield/api/internal/models"
)

type ScanStore interface {
	Create(ctx context.Context, req models.ScanRequest) error
	ListByUser(ctx context.Context, userID string) ([]models.ScanRequest, error)
	ListResultsByUser(ctx context.Context, userID string) ([]models.ScanResult, error)
}

type ScanService struct {
	scans  ScanStore
	queue  *redis.Client
	stream string
	log    zerolog.Logger
}

func NewScanService(scans ScanStore, queue *redis.Client, stream string, log zerolog.Logger) *ScanService {
	return &ScanService{
		scans:  scans,
		queue:  queue,
		stream: stream,
		log:    log,
	}
}

type ScanRequestInput struct {
	URL         string
	ContentType string
	Description string
	Platforms   []string
	Purposes    []string
	Priority    string
}

func (s *ScanService) CreateRequest(ctx context.Context, user models.User, input ScanRequestInput) (models.ScanRequest, error) {
	if input.URL == "" {
		return models.ScanRequest{}, ErrValidation
	}

	contentType := models.ScanContentType(input.ContentType)
	switch contentType {
	case models.ScanContentImage, models.ScanContentVideo, models.ScanContentKeyword:
	case "":
		contentType = models.ScanContentImage
	default:
		return models.ScanRequest{}, ErrValidation
	}

	priority := input.Priority
	if priority == "" {
		priority = "standard"
	}

	req := models.ScanRequest{
		ID:          ids.New(),
		UserID:      user.ID,
		URL:         input.URL,
		ContentType: contentType,
		Description: input.Description,
		Platforms:   input.Platforms,
		Purposes:    input.Purposes,
		Priority:    priority,
		Status:      models.ScanStatusPending,
	}
	if req.Platforms == nil {
		req.Platforms = []string{}
	}
	if req.Purposes == nil {
		req.Purposes = []string{}
	}

	if err := s.scans.Create(ctx, req); err != nil {
		return models.ScanRequest{}, err
	}

	if err := s.Enqueue(ctx, req); err != nil {
		// The request row exists; the scheduler requeues stale pending rows.
		s.log.Warn().Err(err).Str("scan_id", req.ID).Msg("enqueue scan failed")
	}

	return req, nil
}

// Enqueue pushes a scan request onto the stream the detection workers consume.
func (s *ScanService) Enqueue(ctx context.Context, req models.ScanRequest) error {
	if s.queue == nil {
		return nil
	}

	_, err := s.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"scanId":      req.ID,
			"userId":      req.UserID,
			"url":         req.URL,
			"contentType": string(req.ContentType),
			"priority":    req.Priority,
		},
	}).Result()
	return err
}

func (s *ScanService) ListRequests(ctx context.Context, userID string) ([]models.ScanRequest, error) {
	return s.scans.ListByUser(ctx, userID)
}

func (s *ScanService) ListResults(ctx context.Context, userID string) ([]models.ScanResult, error) {
	return s.scans.ListResultsByUser(ctx, userID)
}
