package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/tag-cloud/internal/storage"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InMemStorer keeps rendered clouds in memory until their TTL expires.
type InMemStorer struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewInMemStorer(ttl time.Duration) *InMemStorer {
	return &InMemStorer{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *InMemStorer) Save(ctx context.Context, doc storage.Document) (uuid.UUID, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	s.cache.Set(doc.ID.String(), doc, cache.DefaultExpiration)
	slog.Debug("Saved cloud to in-memory storage", "id", doc.ID, "ttl", s.ttl)

	return doc.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*storage.Document, error) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	doc := v.(storage.Document)
	return &doc, nil
}

func (s *InMemStorer) Len() int {
	return s.cache.ItemCount()
}
