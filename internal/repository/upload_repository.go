package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aishield/api/internal/models"
)

type UploadRepository struct {
	pool *pgxpool.Pool
}

func NewUploadRepository(pool *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{pool: pool}
}

func (r *UploadRepository) Create(ctx context.Context, upload models.Upload) error {
	const query = `
		INSERT INTO uploads (
			id, user_id, bucket, object_key, file_name, content_type, size_bytes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		upload.ID,
		upload.UserID,
		upload.Bucket,
		upload.ObjectKey,
		upload.FileName,
		upload.ContentType,
		upload.SizeBytes,
	)
	return err
}

func (r *UploadRepository) ListByUser(ctx context.Context, userID string) ([]models.Upload, error) {
	const query = `
		SELECT id, user_id, bucket, object_key, file_name, content_type, size_bytes, created_at
		FROM uploads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []models.Upload
	for rows.Next() {
		var upload models.Upload
		if err := rows.Scan(
			&upload.ID,
			&upload.UserID,
			&upload.Bucket,
			&upload.ObjectKey,
			&upload.FileName,
			&upload.ContentType,
			&upload.SizeBytes,
			&upload.CreatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, rows.Err()
}
