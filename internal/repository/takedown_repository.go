package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"aishield/api/internal/models"
)

var ErrTakedownNotFound = errors.New("takedown request not found")

type TakedownRepository struct {
	pool *pgxpool.Pool
}

func NewTakedownRepository(pool *pgxpool.Pool) *TakedownRepository {
	return &TakedownRepository{pool: pool}
}

func (r *TakedownRepository) Create(ctx context.Context, req models.TakedownRequest) error {
	const query = `
		INSERT INTO takedown_requests (
			id, user_id, scan_result_id, url, status, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.ScanResultID,
		req.URL,
		req.Status,
		req.Notes,
	)
	return err
}

func (r *TakedownRepository) ListByUser(ctx context.Context, userID string) ([]models.TakedownRequest, error) {
	const query = `
		SELECT id, user_id, scan_result_id, url, status, notes, created_at, updated_at, completed_at
		FROM takedown_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.TakedownRequest
	for rows.Next() {
		var req models.TakedownRequest
		if err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.ScanResultID,
			&req.URL,
			&req.Status,
			&req.Notes,
			&req.CreatedAt,
			&req.UpdatedAt,
			&req.CompletedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *TakedownRepository) UpdateStatus(ctx context.Context, id string, status models.TakedownStatus) error {
	const query = `
		UPDATE takedown_requests
		SET status = $2,
		    completed_at = CASE WHEN $2 IN ('completed', 'rejected') THEN NOW() ELSE completed_at END,
		    updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTakedownNotFound
	}
	return nil
}
