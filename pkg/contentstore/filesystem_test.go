package contentstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thebartekbanach/canvas/pkg/contentstore"
)

func newTestingFilesystemStore(t *testing.T) (contentstore.ContentStore, string) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := contentstore.NewFilesystemStore(dir)
	require.NoError(t, err)

	return store, dir
}

func TestFilesystemStore_PutReturnsSha256OfContent(t *testing.T) {
	store, _ := newTestingFilesystemStore(t)

	hash, written, err := store.Put(context.Background(), []byte("test"))

	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hash)
}

func TestFilesystemStore_PutIsIdempotent(t *testing.T) {
	store, dir := newTestingFilesystemStore(t)
	data := []byte{0x1, 0x2, 0x3}

	firstHash, firstWritten, err := store.Put(context.Background(), data)
	require.NoError(t, err)

	info, err := os.Stat(store.GetPath(firstHash))
	require.NoError(t, err)

	secondHash, secondWritten, err := store.Put(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, firstHash, secondHash)
	assert.True(t, firstWritten)
	assert.False(t, secondWritten)

	again, err := os.Stat(store.GetPath(secondHash))
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFilesystemStore_ConcurrentIdenticalUploadsProduceOneBlob(t *testing.T) {
	store, dir := newTestingFilesystemStore(t)
	data := []byte("the same bytes uploaded many times")

	var wg sync.WaitGroup
	hashes := make([]string, 8)
	for i := range hashes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hash, _, err := store.Put(context.Background(), data)
			assert.NoError(t, err)
			hashes[i] = hash
		}(i)
	}
	wg.Wait()

	for _, hash := range hashes {
		assert.Equal(t, hashes[0], hash)
	}

	stored, err := os.ReadFile(store.GetPath(hashes[0]))
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFilesystemStore_GetPathJoinsDirAndHash(t *testing.T) {
	store, dir := newTestingFilesystemStore(t)

	assert.Equal(t, filepath.Join(dir, "abc"), store.GetPath("abc"))
}

func TestFilesystemStore_ExistsAndRead(t *testing.T) {
	store, _ := newTestingFilesystemStore(t)
	ctx := context.Background()

	hash, _, err := store.Put(ctx, []byte("image bytes"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, hash)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := store.Read(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)
}

func TestFilesystemStore_UnknownHashDoesNotExist(t *testing.T) {
	store, _ := newTestingFilesystemStore(t)
	ctx := context.Background()
	unknown := contentstore.ComputeHash([]byte("never uploaded"))

	exists, err := store.Exists(ctx, unknown)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Read(ctx, unknown)
	assert.ErrorIs(t, err, contentstore.ErrBlobNotFound)
}

func TestFilesystemStore_MalformedHashNeverExists(t *testing.T) {
	store, _ := newTestingFilesystemStore(t)
	ctx := context.Background()

	for _, hash := range []string{"..", "unknownhash", "", "../uploads"} {
		exists, err := store.Exists(ctx, hash)
		require.NoError(t, err)
		assert.False(t, exists, hash)

		_, err = store.Read(ctx, hash)
		assert.ErrorIs(t, err, contentstore.ErrBlobNotFound, hash)
	}
}

func TestValidHash(t *testing.T) {
	assert.True(t, contentstore.ValidHash(contentstore.ComputeHash([]byte("x"))))
	assert.False(t, contentstore.ValidHash("ABCDEF"))
	assert.False(t, contentstore.ValidHash("9F86D081884C7D659A2FEAA0C55AD015A3BF4F1B2B0B822CD15D6C15B0F00A08"))
}
