package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
)

// Repository implements mediagallery.Repository using in-memory storage
type Repository struct {
	mu    sync.RWMutex
	media map[uuid.UUID]*mediagallery.Media
	now   func() time.Time
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		media: make(map[uuid.UUID]*mediagallery.Media),
		now:   time.Now,
	}
}

func (r *Repository) List(ctx context.Context) ([]*mediagallery.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	media := make([]*mediagallery.Media, 0, len(r.media))
	for _, m := range r.media {
		// Return copies to prevent external modifications
		mCopy := *m
		media = append(media, &mCopy)
	}

	sort.Slice(media, func(i, j int) bool {
		return media[i].CreatedAt.After(media[j].CreatedAt)
	})

	return media, nil
}

func (r *Repository) Insert(ctx context.Context, media *mediagallery.Media) (*mediagallery.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mCopy := *media
	mCopy.ID = uuid.New()
	mCopy.CreatedAt = r.now().UTC()
	r.media[mCopy.ID] = &mCopy

	created := mCopy
	return &created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*mediagallery.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.media[id]
	if !exists {
		return nil, mediagallery.ErrMediaNotFound
	}

	mCopy := *m
	return &mCopy, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.media[id]; !exists {
		return mediagallery.ErrMediaNotFound
	}

	delete(r.media, id)
	return nil
}
