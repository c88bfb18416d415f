package storage

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cloud not found")

// Document is a rendered tag cloud kept for later retrieval.
type Document struct {
	ID        uuid.UUID    `json:"id"`
	Cloud     *cloud.Cloud `json:"cloud"`
	HTML      []byte       `json:"-"`
	CreatedAt time.Time    `json:"created_at"`
}

type Storer interface {
	Save(ctx context.Context, doc Document) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
}
