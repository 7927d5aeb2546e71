package mediagallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tendant/simple-gallery/pkg/mediagallery/objectkey"
	"github.com/tendant/simple-gallery/pkg/mediagallery/urlstrategy"
)

// service implements the Service interface
type service struct {
	repository   Repository
	blobStore    BlobStore
	keyGenerator objectkey.Generator
	urlStrategy  urlstrategy.URLStrategy
	eventSink    EventSink
	logger       *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the metadata repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore sets the blob storage backend for the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.blobStore = store
	}
}

// WithObjectKeyGenerator sets the storage key generation strategy
func WithObjectKeyGenerator(gen objectkey.Generator) Option {
	return func(s *service) {
		s.keyGenerator = gen
	}
}

// WithURLStrategy sets the public URL construction strategy
func WithURLStrategy(strategy urlstrategy.URLStrategy) Option {
	return func(s *service) {
		s.urlStrategy = strategy
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options. A repository,
// a blob store, and a URL strategy are required.
func New(options ...Option) (Service, error) {
	s := &service{
		keyGenerator: objectkey.NewTimestampRandomGenerator(),
		eventSink:    NewNoopEventSink(),
		logger:       slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.blobStore == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	if s.urlStrategy == nil {
		return nil, fmt.Errorf("url strategy is required")
	}

	return s, nil
}

func (s *service) ListMedia(ctx context.Context) ([]*Media, error) {
	media, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return media, nil
}

func (s *service) GetMedia(ctx context.Context, id uuid.UUID) (*Media, error) {
	media, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return media, nil
}

// UploadMedia fans the batch out, one goroutine per file, and collects every
// outcome. Files fail independently: successes persist even when siblings
// fail, and the joined error reports each failed file.
func (s *service) UploadMedia(ctx context.Context, req UploadMediaRequest) ([]*Media, error) {
	if len(req.Files) == 0 {
		return nil, &ValidationError{Reason: "no files provided"}
	}
	if len(req.Files) > MaxBatchSize {
		return nil, &ValidationError{Reason: fmt.Sprintf("too many files: %d (max %d)", len(req.Files), MaxBatchSize)}
	}

	// Validate the whole batch before touching either store.
	for _, f := range req.Files {
		if err := validateFile(f); err != nil {
			return nil, err
		}
	}

	results := make([]*Media, len(req.Files))
	errs := make([]error, len(req.Files))

	var wg sync.WaitGroup
	for i, f := range req.Files {
		wg.Add(1)
		go func(i int, f FileUpload) {
			defer wg.Done()
			media, err := s.uploadOne(ctx, f, req.UploadedBy)
			if err != nil {
				errs[i] = &FileError{OriginalName: f.OriginalName, Err: err}
				return
			}
			results[i] = media
		}(i, f)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		uploaded := results[:0]
		for _, m := range results {
			if m != nil {
				uploaded = append(uploaded, m)
			}
		}
		return uploaded, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return results, nil
}

func validateFile(f FileUpload) error {
	if !ContentTypeAllowed(f.ContentType) {
		return &ValidationError{FileName: f.OriginalName, Reason: fmt.Sprintf("unsupported content type %q", f.ContentType)}
	}
	if f.Size > MaxUploadSize {
		return &ValidationError{FileName: f.OriginalName, Reason: fmt.Sprintf("file too large: %d bytes (max %d)", f.Size, MaxUploadSize)}
	}
	return nil
}

// uploadOne stores the blob first and the metadata second: no blob, no
// record. If the insert fails after the blob was written, the blob is
// deleted again so the stores stay consistent; a failed compensation leaves
// an orphaned blob, which is logged and accepted.
func (s *service) uploadOne(ctx context.Context, f FileUpload, uploadedBy string) (*Media, error) {
	key := s.keyGenerator.GenerateKey(f.OriginalName)

	if err := s.blobStore.Upload(ctx, key, f.Reader, f.ContentType); err != nil {
		return nil, &StorageError{Key: key, Op: "upload", Err: err}
	}

	media := &Media{
		FileName:     key,
		OriginalName: f.OriginalName,
		Type:         MediaTypeFor(f.ContentType),
		URL:          s.urlStrategy.PublicURL(key),
		UploadedBy:   uploadedBy,
	}

	created, err := s.repository.Insert(ctx, media)
	if err != nil {
		if delErr := s.blobStore.Delete(ctx, key); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to remove blob after insert failure, blob is orphaned",
				"key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to record media metadata: %w", err)
	}

	s.eventSink.MediaUploaded(ctx, created)

	return created, nil
}

// DeleteMedia looks the record up first so an unknown id never triggers a
// blob operation, then deletes the blob before the record. A blob-delete
// failure keeps the record so the pointer to the undeleted blob survives
// and the operation stays retryable.
func (s *service) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobStore.Delete(ctx, media.FileName); err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, &StorageError{Key: media.FileName, Op: "delete", Err: err})
	}

	if err := s.repository.DeleteByID(ctx, id); err != nil {
		// The blob is already gone; the record now dangles. Surface the
		// error so the caller can retry the record delete.
		s.logger.ErrorContext(ctx, "blob deleted but record removal failed, record is dangling",
			"id", id, "key", media.FileName, "error", err)
		return fmt.Errorf("%w: %w", ErrDeleteFailed, &MediaError{MediaID: id, Op: "delete", Err: err})
	}

	s.eventSink.MediaDeleted(ctx, media)

	return nil
}
