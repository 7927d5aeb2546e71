package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
	"github.com/tendant/simple-gallery/pkg/mediagallery/storage/memory"
)

func TestUploadDownload(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	err := store.Upload(ctx, "key1", strings.NewReader("hello"), "image/png")
	require.NoError(t, err)

	rc, err := store.Download(ctx, "key1")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	ct, ok := store.ContentType("key1")
	require.True(t, ok)
	assert.Equal(t, "image/png", ct)
}

func TestUploadOverwrites(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Upload(ctx, "key1", strings.NewReader("old"), "image/png"))
	require.NoError(t, store.Upload(ctx, "key1", strings.NewReader("new"), "image/jpeg"))

	rc, err := store.Download(ctx, "key1")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	assert.Equal(t, 1, store.Len())
}

func TestDownloadMissing(t *testing.T) {
	store := memory.New()

	_, err := store.Download(context.Background(), "nope")
	assert.ErrorIs(t, err, mediagallery.ErrObjectNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Upload(ctx, "key1", strings.NewReader("x"), "image/png"))
	require.NoError(t, store.Delete(ctx, "key1"))

	// Deleting an absent key succeeds.
	assert.NoError(t, store.Delete(ctx, "key1"))
	assert.Equal(t, 0, store.Len())
}
