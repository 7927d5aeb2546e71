package mediagallery

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaType classifies a stored media item.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaTypeFor derives the media type from a declared content type.
// Anything under video/* is a video; everything else that passes
// validation is an image.
func MediaTypeFor(contentType string) MediaType {
	if strings.HasPrefix(contentType, "video/") {
		return MediaTypeVideo
	}
	return MediaTypeImage
}

// Media is a gallery entry: one record per blob in the object store.
// Records are immutable once created; the lifecycle is create -> delete.
type Media struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"filename"`
	OriginalName string    `json:"originalname"`
	Type         MediaType `json:"type"`
	URL          string    `json:"url"`
	UploadedBy   string    `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// MaxUploadSize is the per-file size ceiling (50 MiB).
const MaxUploadSize = 50 * 1024 * 1024

// MaxBatchSize is the maximum number of files accepted in one upload request.
const MaxBatchSize = 10

// allowedContentTypes is the upload allow-list. Anything else is rejected
// before any store call is made.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"video/mp4":  {},
}

// ContentTypeAllowed reports whether the declared content type may be uploaded.
func ContentTypeAllowed(contentType string) bool {
	_, ok := allowedContentTypes[contentType]
	return ok
}
