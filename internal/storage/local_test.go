package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

func makeFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveImage(t *testing.T) {
	store := newTestStore(t)

	t.Run("stores an allowed image", func(t *testing.T) {
		file := makeFileHeader(t, "Sunday Picnic.JPG", "image/jpeg", "fake-jpeg-bytes")

		stored, err := store.SaveImage(file, 1<<20)
		require.NoError(t, err)
		assert.Equal(t, "Sunday Picnic.JPG", stored.OriginalName)
		assert.True(t, strings.HasPrefix(stored.Filename, "sunday-picnic-"), "filename %q", stored.Filename)
		assert.True(t, strings.HasSuffix(stored.Filename, ".jpg"))
		assert.Equal(t, "/uploads/"+stored.Filename, stored.URL)

		data, err := os.ReadFile(filepath.Join(store.Dir(), stored.Filename))
		require.NoError(t, err)
		assert.Equal(t, "fake-jpeg-bytes", string(data))
	})

	t.Run("rejects a disallowed type", func(t *testing.T) {
		file := makeFileHeader(t, "script.svg", "image/svg+xml", "<svg/>")

		_, err := store.SaveImage(file, 1<<20)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("rejects a file over the limit", func(t *testing.T) {
		file := makeFileHeader(t, "big.png", "image/png", strings.Repeat("x", 64))

		_, err := store.SaveImage(file, 16)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestSaveDocument(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.SaveDocument(makeFileHeader(t, "bulletin.pdf", "application/pdf", "%PDF-1.4"), 1<<20)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Filename, ".pdf"))

	_, err = store.SaveDocument(makeFileHeader(t, "photo.png", "image/png", "png"), 1<<20)
	assert.Error(t, err, "images are not documents")
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.SaveImage(makeFileHeader(t, "pic.png", "image/png", "png-bytes"), 1<<20)
	require.NoError(t, err)

	t.Run("rejects traversal attempts", func(t *testing.T) {
		for _, name := range []string{"../secret", "..", "a/../../b", "dir/file.png"} {
			err := store.Delete(name)
			require.Error(t, err, "name %q", name)
			assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
		}
	})

	t.Run("unknown file is 404", func(t *testing.T) {
		err := store.Delete("nope.png")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("removes a stored file", func(t *testing.T) {
		require.NoError(t, store.Delete(stored.Filename))
		_, err := os.Stat(filepath.Join(store.Dir(), stored.Filename))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestDeleteByURL(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.SaveImage(makeFileHeader(t, "pic.png", "image/png", "png-bytes"), 1<<20)
	require.NoError(t, err)

	assert.NoError(t, store.DeleteByURL("https://example.com/external.pdf"), "external links are ignored")
	assert.NoError(t, store.DeleteByURL(stored.URL))
}
