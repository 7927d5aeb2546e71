package urlstrategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-gallery/pkg/mediagallery/urlstrategy"
)

func TestS3PublicStrategy(t *testing.T) {
	s := urlstrategy.NewS3PublicStrategy("media-bucket", "eu-west-1")

	assert.Equal(t,
		"https://media-bucket.s3.eu-west-1.amazonaws.com/1714688793412-284619337photo.jpg",
		s.PublicURL("1714688793412-284619337photo.jpg"))
}

func TestBaseURLStrategy(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		key     string
		want    string
	}{
		{
			name:    "plain base",
			baseURL: "https://cdn.example.com",
			key:     "a.jpg",
			want:    "https://cdn.example.com/a.jpg",
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "https://cdn.example.com/",
			key:     "a.jpg",
			want:    "https://cdn.example.com/a.jpg",
		},
		{
			name:    "path-style minio",
			baseURL: "http://localhost:9000/media-bucket",
			key:     "a.jpg",
			want:    "http://localhost:9000/media-bucket/a.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := urlstrategy.NewBaseURLStrategy(tt.baseURL)
			assert.Equal(t, tt.want, s.PublicURL(tt.key))
		})
	}
}
