package mediagallery

import (
	"context"

	"github.com/google/uuid"
)

// Service coordinates the object store and the metadata store. It is the
// only component permitted to mutate either one.
type Service interface {
	// UploadMedia stores each file's blob and then records its metadata.
	// Files are processed independently and concurrently; one file's
	// failure does not abort its siblings. The returned records are in
	// submission order. When some files fail, the successful records are
	// still returned together with a joined error describing every
	// failure.
	UploadMedia(ctx context.Context, req UploadMediaRequest) ([]*Media, error)

	// ListMedia returns all records, newest first.
	ListMedia(ctx context.Context) ([]*Media, error)

	// GetMedia returns a single record by id.
	GetMedia(ctx context.Context, id uuid.UUID) (*Media, error)

	// DeleteMedia removes the record's blob and then the record itself.
	// If the blob delete fails the record is left intact so the
	// operation can be retried.
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}
