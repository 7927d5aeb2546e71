package mediagallery

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Repository is the metadata store for media records. Implementations are
// stateless request/response wrappers with no cached state; the Service is
// the only component that mutates the store.
type Repository interface {
	// List returns all media records sorted by created_at descending.
	List(ctx context.Context) ([]*Media, error)

	// Insert stores a new record, assigning ID and CreatedAt. The input's
	// ID and CreatedAt are ignored.
	Insert(ctx context.Context, media *Media) (*Media, error)

	// GetByID returns the record with the given id, or ErrMediaNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Media, error)

	// DeleteByID removes the record with the given id, or returns
	// ErrMediaNotFound if no such record exists.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// BlobStore stores opaque byte blobs under generated keys.
type BlobStore interface {
	// Upload writes the blob under key, overwriting any existing object.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Download returns the blob stored under key, or ErrObjectNotFound
	// when no such blob exists.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob under key. Deleting a missing key succeeds,
	// keeping the delete flow retry-safe.
	Delete(ctx context.Context, key string) error
}

// EventSink receives notifications after media operations complete.
// Sink failures are logged and never fail the operation.
type EventSink interface {
	MediaUploaded(ctx context.Context, media *Media)
	MediaDeleted(ctx context.Context, media *Media)
}
