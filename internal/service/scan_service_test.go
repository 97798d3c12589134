package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aishield/api/internal/ids"
	"aishield/api/internal/models"
)

type memScanStore struct {
	mu       sync.Mutex
	requests []models.ScanRequest
	results  []models.ScanResult
}

func (m *memScanStore) Create(_ context.Context, req models.ScanRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return nil
}

func (m *memScanStore) ListByUser(_ context.Context, userID string) ([]models.ScanRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScanRequest
	for _, req := range m.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *memScanStore) ListResultsByUser(_ context.Context, userID string) ([]models.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results, nil
}

func TestCreateScanRequest(t *testing.T) {
	store := &memScanStore{}
	svc := NewScanService(store, nil, "scan:requests", zerolog.Nop())
	user := models.User{ID: ids.New()}

	req, err := svc.CreateRequest(context.Background(), user, ScanRequestInput{
		URL:       "https://example.com/photo.jpg",
		Platforms: []string{"instagram", "tiktok"},
		Purposes:  []string{"ai-training"},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, req.UserID)
	assert.Equal(t, models.ScanStatusPending, req.Status)
	assert.Equal(t, models.ScanContentImage, req.ContentType, "content type defaults to image")
	assert.Equal(t, "standard", req.Priority)

	listed, err := svc.ListRequests(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, req.ID, listed[0].ID)
}

func TestCreateScanRequestValidation(t *testing.T) {
	store := &memScanStore{}
	svc := NewScanService(store, nil, "scan:requests", zerolog.Nop())
	user := models.User{ID: ids.New()}

	_, err := svc.CreateRequest(context.Background(), user, ScanRequestInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateRequest(context.Background(), user, ScanRequestInput{
		URL:         "https://example.com",
		ContentType: "hologram",
	})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, store.requests)
}

func TestCreateScanRequestEmptySlices(t *testing.T) {
	store := &memScanStore{}
	svc := NewScanService(store, nil, "scan:requests", zerolog.Nop())

	req, err := svc.CreateRequest(context.Background(), models.User{ID: ids.New()}, ScanRequestInput{
		URL: "https://example.com",
	})
	require.NoError(t, err)
	assert.NotNil(t, req.Platforms)
	assert.NotNil(t, req.Purposes)
}

type memTakedownStore struct {
	mu       sync.Mutex
	requests []models.TakedownRequest
}

func (m *memTakedownStore) Create(_ context.Context, req models.TakedownRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return nil
}

func (m *memTakedownStore) ListByUser(_ context.Context, userID string) ([]models.TakedownRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.TakedownRequest
	for _, req := range m.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func TestCreateTakedownRequest(t *testing.T) {
	store := &memTakedownStore{}
	svc := NewTakedownService(store, zerolog.Nop())
	user := models.User{ID: ids.New()}

	req, err := svc.CreateRequest(context.Background(), user, TakedownInput{
		URL:   "https://infringing.example.com/copy.jpg",
		Notes: "unauthorized repost",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TakedownStatusPending, req.Status)
	assert.Nil(t, req.ScanResultID)

	_, err = svc.CreateRequest(context.Background(), user, TakedownInput{})
	assert.ErrorIs(t, err, ErrValidation)

	listed, err := svc.ListRequests(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
