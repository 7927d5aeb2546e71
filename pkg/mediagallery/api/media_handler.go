package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
	"github.com/tendant/simple-gallery/pkg/mediagallery/authz"
)

// multipartMemoryLimit bounds how much of a parsed multipart body is held
// in memory before spilling to temp files.
const multipartMemoryLimit = 32 << 20

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MediaHandler exposes the gallery operations over HTTP.
type MediaHandler struct {
	service    mediagallery.Service
	authorizer authz.Authorizer
}

// NewMediaHandler creates a handler over the given coordinator and
// authorization policy.
func NewMediaHandler(service mediagallery.Service, authorizer authz.Authorizer) *MediaHandler {
	return &MediaHandler{
		service:    service,
		authorizer: authorizer,
	}
}

// Routes returns the router for media endpoints
func (h *MediaHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListMedia)
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(h.authorizer))
		r.Post("/upload", h.UploadMedia)
		r.Delete("/{id}", h.DeleteMedia)
	})
	return r
}

// NewRouter assembles the full HTTP surface. Both entry points (the
// long-running server and the on-demand function) consume this router, so
// the business logic is never duplicated between them.
func NewRouter(service mediagallery.Service, authorizer authz.Authorizer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	h := NewMediaHandler(service, authorizer)
	r.Mount("/api/media", h.Routes())

	return r
}

// ListMedia returns every record, newest first. No authorization required.
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.service.ListMedia(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list media", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "failed to fetch media"})
		return
	}

	if media == nil {
		media = []*mediagallery.Media{}
	}
	render.JSON(w, r, media)
}

// UploadMedia accepts a multipart form with 1-10 entries under the "files"
// field and stores each one. The response preserves submission order.
func (h *MediaHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "invalid multipart form"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "no files provided"})
		return
	}
	if len(fileHeaders) > mediagallery.MaxBatchSize {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "too many files"})
		return
	}

	req := mediagallery.UploadMediaRequest{
		UploadedBy: r.Header.Get(UserIDHeader),
	}

	var closers []interface{ Close() error }
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "failed to read uploaded file"})
			return
		}
		closers = append(closers, f)

		req.Files = append(req.Files, mediagallery.FileUpload{
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Reader:       f,
		})
	}

	media, err := h.service.UploadMedia(r.Context(), req)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to upload media", "error", err)
		renderError(w, r, err, "upload failed")
		return
	}

	render.JSON(w, r, media)
}

// DeleteMedia removes one record and its blob.
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "invalid media id"})
		return
	}

	if err := h.service.DeleteMedia(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "failed to delete media", "id", id, "error", err)
		renderError(w, r, err, "delete failed")
		return
	}

	render.JSON(w, r, map[string]string{"message": "media deleted"})
}

// renderError maps coordinator errors onto HTTP statuses. The body carries
// a human-readable message only; no structured error codes are exposed.
func renderError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validationErr *mediagallery.ValidationError
	switch {
	case errors.As(err, &validationErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: validationErr.Error()})
	case errors.Is(err, mediagallery.ErrMediaNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "media not found"})
	case errors.Is(err, mediagallery.ErrNotAuthorized):
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, ErrorResponse{Error: "permission denied"})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: fallback})
	}
}
