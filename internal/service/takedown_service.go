package service

import (
	"context"

	"github.com/rs/zerolog"

	"aishield/api/internal/ids"
	"aishield/api/internal/models"
)

type TakedownStore interface {
	Create(ctx context.Context, req models.TakedownRequest) error
	ListByUser(ctx context.Context, userID string) ([]models.TakedownRequest, error)
}

type TakedownService struct {
	takedowns TakedownStore
	log       zerolog.Logger
}

func NewTakedownService(takedowns TakedownStore, log zerolog.Logger) *TakedownService {
	return &TakedownService{takedowns: takedowns, log: log}
}

type TakedownInput struct {
	URL          string
	ScanResultID string
	Notes        string
}

func (s *TakedownService) CreateRequest(ctx context.Context, user models.User, input TakedownInput) (models.TakedownRequest, error) {
	if input.URL == "" {
		return models.TakedownRequest{}, ErrValidation
	}

	req := models.TakedownRequest{
		ID:     ids.New(),
		UserID: user.ID,
		URL:    input.URL,
		Status: models.TakedownStatusPending,
		Notes:  input.Notes,
	}
	if input.ScanResultID != "" {
		req.ScanResultID = &input.ScanResultID
	}

	if err := s.takedowns.Create(ctx, req); err != nil {
		return models.TakedownRequest{}, err
	}
	return req, nil
}

func (s *TakedownService) ListRequests(ctx context.Context, userID string) ([]models.TakedownRequest, error) {
	return s.takedowns.ListByUser(ctx, userID)
}
