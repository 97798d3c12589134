package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog"

	"aishield/api/internal/ids"
	"aishield/api/internal/models"
	"aishield/api/internal/storage"
)

const maxUploadBytes = 25 << 20 // 25 MiB

var whitespace = regexp.MustCompile(`\s+`)

type UploadStore interface {
	Create(ctx context.Context, upload models.Upload) error
	ListByUser(ctx context.Context, userID string) ([]models.Upload, error)
}

type UploadService struct {
	uploads UploadStore
	store   *storage.ObjectStore
	log     zerolog.Logger
}

func NewUploadService(uploads UploadStore, store *storage.ObjectStore, log zerolog.Logger) *UploadService {
	return &UploadService{
		uploads: uploads,
		store:   store,
		log:     log,
	}
}

type UploadInput struct {
	User   models.User
	File   multipart.File
	Header *multipart.FileHeader
}

type UploadResult struct {
	Upload models.Upload
	URL    string
}

func (s *UploadService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.File == nil || input.Header == nil {
		return UploadResult{}, errors.New("invalid file payload")
	}
	if input.Header.Size > maxUploadBytes {
		return UploadResult{}, fmt.Errorf("file exceeds %d bytes", maxUploadBytes)
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxUploadBytes+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return UploadResult{}, errors.New("empty file")
	}
	if len(data) > maxUploadBytes {
		return UploadResult{}, fmt.Errorf("file exceeds %d bytes", maxUploadBytes)
	}

	contentType := http.DetectContentType(data)
	objectKey := s.buildObjectKey(input.Header.Filename)

	info, err := s.store.Client().PutObject(ctx, s.store.Bucket(), objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return UploadResult{}, fmt.Errorf("put object: %w", err)
	}

	upload := models.Upload{
		ID:          ids.New(),
		UserID:      input.User.ID,
		Bucket:      s.store.Bucket(),
		ObjectKey:   objectKey,
		FileName:    input.Header.Filename,
		ContentType: contentType,
		SizeBytes:   info.Size,
	}

	if err := s.uploads.Create(ctx, upload); err != nil {
		return UploadResult{}, fmt.Errorf("save metadata: %w", err)
	}

	return UploadResult{
		Upload: upload,
		URL:    s.store.PublicURL(objectKey),
	}, nil
}

func (s *UploadService) List(ctx context.Context, userID string) ([]models.Upload, error) {
	return s.uploads.ListByUser(ctx, userID)
}

func (s *UploadService) PublicURL(objectKey string) string {
	return s.store.PublicURL(objectKey)
}

func (s *UploadService) buildObjectKey(filename string) string {
	datePrefix := time.Now().UTC().Format("2006/01/02")
	safe := whitespace.ReplaceAllString(path.Base(filename), "_")
	return path.Join(datePrefix, fmt.Sprintf("%s-%s", uuid.NewString(), safe))
}
