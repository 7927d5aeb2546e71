package mediagallery

import "io"

// FileUpload is one file within an upload batch.
type FileUpload struct {
	// OriginalName is the user-supplied display name. It is stored
	// verbatim; it is not sanitized.
	OriginalName string

	// ContentType is the declared MIME type, checked against the
	// upload allow-list.
	ContentType string

	// Size is the declared size in bytes, checked against MaxUploadSize.
	Size int64

	// Reader supplies the file bytes.
	Reader io.Reader
}

// UploadMediaRequest contains parameters for uploading a batch of files.
type UploadMediaRequest struct {
	Files      []FileUpload
	UploadedBy string
}
