package models

import "time"

type ScanStatus string

const (
	ScanStatusPending   ScanStatus = "pending"
	ScanStatusScanning  ScanStatus = "scanning"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

type ScanContentType string

const (
	ScanContentImage   ScanContentType = "image"
	ScanContentVideo   ScanContentType = "video"
	ScanContentKeyword ScanContentType = "keyword"
)

type ScanRequest struct {
	ID          string
	UserID      string
	URL         string
	ContentType ScanContentType
	Description string
	Platforms   []string
	Purposes    []string
	Priority    string
	Status      ScanStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

type ScanResult struct {
	ID            string
	ScanRequestID string
	Result        string
	Score         string
	DetectionType string
	CreatedAt     time.Time
}
