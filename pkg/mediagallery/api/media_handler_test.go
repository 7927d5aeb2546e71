package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
	"github.com/tendant/simple-gallery/pkg/mediagallery/api"
	"github.com/tendant/simple-gallery/pkg/mediagallery/authz"
	repomemory "github.com/tendant/simple-gallery/pkg/mediagallery/repo/memory"
	storagememory "github.com/tendant/simple-gallery/pkg/mediagallery/storage/memory"
	"github.com/tendant/simple-gallery/pkg/mediagallery/urlstrategy"
)

const adminID = "admin1"

type testServer struct {
	handler http.Handler
	store   *storagememory.Backend
	repo    *repomemory.Repository
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	repo := repomemory.New()
	store := storagememory.New()

	svc, err := mediagallery.New(
		mediagallery.WithRepository(repo),
		mediagallery.WithBlobStore(store),
		mediagallery.WithURLStrategy(urlstrategy.NewS3PublicStrategy("media-bucket", "us-east-1")),
	)
	require.NoError(t, err)

	return &testServer{
		handler: api.NewRouter(svc, authz.NewStaticAdmin(adminID)),
		store:   store,
		repo:    repo,
	}
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

type filePart struct {
	name        string
	contentType string
	content     string
}

func multipartBody(t *testing.T, parts []filePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, p.name))
		header.Set("Content-Type", p.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, userID string, parts []filePart) *http.Request {
	t.Helper()

	body, contentType := multipartBody(t, parts)
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	if userID != "" {
		req.Header.Set(api.UserIDHeader, userID)
	}
	return req
}

func TestListMediaEmpty(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/media", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var media []*mediagallery.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	assert.Empty(t, media)
}

func TestUploadMedia(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(uploadRequest(t, adminID, []filePart{
		{name: "a.jpg", contentType: "image/jpeg", content: "jpeg bytes"},
		{name: "b.mp4", contentType: "video/mp4", content: "mp4 bytes"},
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var media []*mediagallery.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	require.Len(t, media, 2)

	assert.Equal(t, "a.jpg", media[0].OriginalName)
	assert.Equal(t, mediagallery.MediaTypeImage, media[0].Type)
	assert.Equal(t, "b.mp4", media[1].OriginalName)
	assert.Equal(t, mediagallery.MediaTypeVideo, media[1].Type)
	for _, m := range media {
		assert.Equal(t, adminID, m.UploadedBy)
	}

	// The listing now includes both records.
	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/media", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []*mediagallery.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestUploadMediaForbidden(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name   string
		userID string
	}{
		{"wrong identifier", "intruder"},
		{"missing header", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(uploadRequest(t, tt.userID, []filePart{
				{name: "a.jpg", contentType: "image/jpeg", content: "x"},
			}))

			require.Equal(t, http.StatusForbidden, rec.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)

			// Rejected at the gate: no blob written, no record inserted.
			assert.Equal(t, 0, ts.store.Len())
			records, err := ts.repo.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestUploadMediaRejectsDisallowedType(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(uploadRequest(t, adminID, []filePart{
		{name: "doc.pdf", contentType: "application/pdf", content: "pdf"},
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, ts.store.Len())
}

func TestUploadMediaRejectsEmptyBatch(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(uploadRequest(t, adminID, nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMediaRejectsOversizedBatch(t *testing.T) {
	ts := setupTestServer(t)

	parts := make([]filePart, mediagallery.MaxBatchSize+1)
	for i := range parts {
		parts[i] = filePart{name: fmt.Sprintf("f%d.jpg", i), contentType: "image/jpeg", content: "x"}
	}

	rec := ts.do(uploadRequest(t, adminID, parts))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, ts.store.Len())
}

func TestDeleteMedia(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(uploadRequest(t, adminID, []filePart{
		{name: "a.jpg", contentType: "image/jpeg", content: "jpeg bytes"},
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var media []*mediagallery.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	require.Len(t, media, 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/media/"+media[0].ID.String(), nil)
	req.Header.Set(api.UserIDHeader, adminID)
	rec = ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Gone from the listing and the blob is unreadable.
	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/media", nil))
	var listed []*mediagallery.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	_, err := ts.store.Download(context.Background(), media[0].FileName)
	assert.Error(t, err)
}

func TestDeleteMediaStatuses(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name       string
		target     string
		userID     string
		wantStatus int
	}{
		{"unknown id", "/api/media/0b961c3e-7061-4f50-9d9a-7a8a4d1a3f9e", adminID, http.StatusNotFound},
		{"malformed id", "/api/media/not-a-uuid", adminID, http.StatusBadRequest},
		{"forbidden", "/api/media/0b961c3e-7061-4f50-9d9a-7a8a4d1a3f9e", "intruder", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.userID != "" {
				req.Header.Set(api.UserIDHeader, tt.userID)
			}
			rec := ts.do(req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := setupTestServer(t)

	for _, target := range []string{"/api/media", "/api/media/upload", "/api/media/some-id"} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, target, nil)
			req.Header.Set("Origin", "https://miniapp.example.com")
			rec := ts.do(req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, user-id", rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
