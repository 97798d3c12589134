package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aishield/api/internal/models"
)

var ErrScanRequestNotFound = errors.New("scan request not found")

type ScanRepository struct {
	pool *pgxpool.Pool
}

func NewScanRepository(pool *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{pool: pool}
}

func (r *ScanRepository) Create(ctx context.Context, req models.ScanRequest) error {
	const query = `
		INSERT INTO scan_requests (
			id, user_id, url, content_type, description, platforms, purposes, priority, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
	`

	platforms, err := json.Marshal(req.Platforms)
	if err != nil {
		return err
	}
	purposes, err := json.Marshal(req.Purposes)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.URL,
		req.ContentType,
		req.Description,
		string(platforms),
		string(purposes),
		req.Priority,
		req.Status,
	)
	return err
}

func (r *ScanRepository) GetByID(ctx context.Context, id string) (models.ScanRequest, error) {
	const query = `
		SELECT id, user_id, url, content_type, description, platforms, purposes, priority, status, created_at, updated_at, completed_at
		FROM scan_requests WHERE id = $1
	`

	req, err := r.scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ScanRequest{}, ErrScanRequestNotFound
		}
		return models.ScanRequest{}, err
	}
	return req, nil
}

func (r *ScanRepository) ListByUser(ctx context.Context, userID string) ([]models.ScanRequest, error) {
	const query = `
		SELECT id, user_id, url, content_type, description, platforms, purposes, priority, status, created_at, updated_at, completed_at
		FROM scan_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.ScanRequest
	for rows.Next() {
		req, err := r.scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListStalePending returns pending requests untouched for longer than age,
// for the scheduler to push back onto the scan stream.
func (r *ScanRepository) ListStalePending(ctx context.Context, age time.Duration) ([]models.ScanRequest, error) {
	const query = `
		SELECT id, user_id, url, content_type, description, platforms, purposes, priority, status, created_at, updated_at, completed_at
		FROM scan_requests
		WHERE status = 'pending' AND updated_at <= NOW() - make_interval(secs => $1)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, age.Seconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.ScanRequest
	for rows.Next() {
		req, err := r.scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *ScanRepository) UpdateStatus(ctx context.Context, id string, status models.ScanStatus) error {
	const query = `
		UPDATE scan_requests
		SET status = $2,
		    completed_at = CASE WHEN $2 IN ('completed', 'failed') THEN NOW() ELSE completed_at END,
		    updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrScanRequestNotFound
	}
	return nil
}

func (r *ScanRepository) ListResultsByUser(ctx context.Context, userID string) ([]models.ScanResult, error) {
	const query = `
		SELECT sr.id, sr.scan_request_id, sr.result, sr.score, sr.detection_type, sr.created_at
		FROM scan_results sr
		JOIN scan_requests req ON req.id = sr.scan_request_id
		WHERE req.user_id = $1
		ORDER BY sr.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ScanResult
	for rows.Next() {
		var res models.ScanResult
		if err := rows.Scan(
			&res.ID,
			&res.ScanRequestID,
			&res.Result,
			&res.Score,
			&res.DetectionType,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *ScanRepository) scanRequest(row pgx.Row) (models.ScanRequest, error) {
	var (
		req       models.ScanRequest
		platforms string
		purposes  string
	)
	if err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.URL,
		&req.ContentType,
		&req.Description,
		&platforms,
		&purposes,
		&req.Priority,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.CompletedAt,
	); err != nil {
		return models.ScanRequest{}, err
	}
	if err := json.Unmarshal([]byte(platforms), &req.Platforms); err != nil {
		return models.ScanRequest{}, err
	}
	if err := json.Unmarshal([]byte(purposes), &req.Purposes); err != nil {
		return models.ScanRequest{}, err
	}
	return req, nil
}
