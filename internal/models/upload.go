package models

import "time"

type Upload struct {
	ID          string
	UserID      string
	Bucket      string
	ObjectKey   string
	FileName    string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
