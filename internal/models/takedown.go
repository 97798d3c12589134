package models

import "time"

type TakedownStatus string

const (
	TakedownStatusPending   TakedownStatus = "pending"
	TakedownStatusSubmitted TakedownStatus = "submitted"
	TakedownStatusCompleted TakedownStatus = "completed"
	TakedownStatusRejected  TakedownStatus = "rejected"
)

type TakedownRequest struct {
	ID           string
	UserID       string
	ScanResultID *string
	URL          string
	Status       TakedownStatus
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}
