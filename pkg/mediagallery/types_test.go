package mediagallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
)

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        mediagallery.MediaType
	}{
		{"image/jpeg", mediagallery.MediaTypeImage},
		{"image/png", mediagallery.MediaTypeImage},
		{"image/gif", mediagallery.MediaTypeImage},
		{"video/mp4", mediagallery.MediaTypeVideo},
		{"video/webm", mediagallery.MediaTypeVideo},
		{"application/pdf", mediagallery.MediaTypeImage}, // never reached: rejected by the allow-list
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, mediagallery.MediaTypeFor(tt.contentType))
		})
	}
}

func TestContentTypeAllowed(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png", "image/gif", "video/mp4"}
	for _, ct := range allowed {
		assert.True(t, mediagallery.ContentTypeAllowed(ct), ct)
	}

	rejected := []string{"application/pdf", "text/html", "video/webm", "image/svg+xml", ""}
	for _, ct := range rejected {
		assert.False(t, mediagallery.ContentTypeAllowed(ct), ct)
	}
}
