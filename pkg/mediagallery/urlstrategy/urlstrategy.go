// Package urlstrategy constructs public URLs for stored blobs. Strategies
// are pure: the URL is computed from static configuration and the object
// key, with no network call.
package urlstrategy

import (
	"fmt"
	"strings"
)

// URLStrategy defines the interface for public URL generation.
type URLStrategy interface {
	// PublicURL returns the publicly resolvable address of the blob
	// stored under key.
	PublicURL(key string) string
}

// S3PublicStrategy builds virtual-hosted-style S3 URLs:
// https://<bucket>.s3.<region>.amazonaws.com/<key>
type S3PublicStrategy struct {
	Bucket string
	Region string
}

// NewS3PublicStrategy creates a strategy for a public S3 bucket.
func NewS3PublicStrategy(bucket, region string) *S3PublicStrategy {
	return &S3PublicStrategy{Bucket: bucket, Region: region}
}

func (s *S3PublicStrategy) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key)
}

// BaseURLStrategy prefixes keys with a fixed base URL. Useful for CDNs and
// path-style S3-compatible services like MinIO.
type BaseURLStrategy struct {
	BaseURL string
}

// NewBaseURLStrategy creates a strategy rooted at baseURL.
func NewBaseURLStrategy(baseURL string) *BaseURLStrategy {
	return &BaseURLStrategy{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *BaseURLStrategy) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.BaseURL, key)
}
