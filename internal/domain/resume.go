package domain

import (
	"context"
	"time"
)

// Resume is the single uploaded file per user. Re-uploading replaces the
// stored object and the row's file key; prior versions are not kept.
type Resume struct {
	UserID    int64     `json:"user_id"`
	FileKey   string    `json:"file_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Download URL derived from the file key at response time.
	URL string `json:"url,omitempty"`
}

type ResumeRepository interface {
	// Upsert creates the row on first upload and replaces the file key on
	// subsequent uploads.
	Upsert(ctx context.Context, resume *Resume) error
	// GetByUserID returns (nil, nil) when the user has no resume.
	GetByUserID(ctx context.Context, userID int64) (*Resume, error)
}

// FileStore abstracts the object storage holding uploaded resume files.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	URL(key string) string
}

type ResumeUsecase interface {
	Upload(ctx context.Context, filename string, data []byte) (*Resume, error)
	// Get returns (nil, nil) when the user has not uploaded a resume.
	Get(ctx context.Context, userID int64) (*Resume, error)
}
