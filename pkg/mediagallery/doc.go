// Package mediagallery provides a small library for an admin-curated media
// gallery: blobs live in an object store, one metadata record per blob
// lives in a relational store, and a Service coordinates writes across the
// two so that their contents stay consistent under partial failure.
//
// The two backends share no transaction. The Service therefore orders its
// calls so that a failure at any single step leaves the stores in a state
// that is either consistent or safely retryable: a blob is always written
// before its record (no record without a blob), a record is always read and
// its blob removed before the record is deleted (no silent loss of the
// pointer to an undeleted blob), and a failed metadata insert triggers a
// compensating blob delete.
//
// Repository implementations (memory, Postgres) and BlobStore
// implementations (memory, S3) are provided under subpackages, along with
// key generation (objectkey), public URL construction (urlstrategy), the
// authorization policy (authz), and the HTTP surface (api).
package mediagallery
