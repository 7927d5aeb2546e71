package mediagallery

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrMediaNotFound indicates a media record was not found
	ErrMediaNotFound = errors.New("media not found")

	// ErrObjectNotFound indicates a blob was not found in the object store
	ErrObjectNotFound = errors.New("object not found")

	// ErrNotAuthorized indicates the caller identifier is not allowed to
	// perform the operation
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUploadFailed indicates an upload operation failed
	ErrUploadFailed = errors.New("upload failed")

	// ErrDeleteFailed indicates a delete operation failed
	ErrDeleteFailed = errors.New("delete failed")
)

// ValidationError rejects a file before any store call is made.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid file %q: %s", e.FileName, e.Reason)
}

// MediaError represents an error related to a media record operation
type MediaError struct {
	MediaID uuid.UUID
	Op      string
	Err     error
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("media operation %s failed for media %s: %v", e.Op, e.MediaID, e.Err)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to blob storage operations
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FileError ties a failure to the file within an upload batch that caused
// it. Files fail independently; sibling files are unaffected.
type FileError struct {
	OriginalName string
	Err          error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %q: %v", e.OriginalName, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
