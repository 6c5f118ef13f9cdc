package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorage_SaveFileWithPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	header := newTestFileHeader(t, "syllabus.pdf", "%PDF-1.4 fake content")
	url, err := storage.SaveFileWithPath(header, "syllabi")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/syllabi/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	// The stored file exists under the subdirectory with a fresh name
	entries, err := os.ReadDir(filepath.Join(dir, "syllabi"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEqual(t, "syllabus.pdf", entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, "syllabi", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake content", string(content))
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	header := newTestFileHeader(t, "syllabus.pdf", "content")
	url, err := storage.SaveFileWithPath(header, "syllabi")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))

	entries, err := os.ReadDir(filepath.Join(dir, "syllabi"))
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting again is a no-op
	require.NoError(t, storage.DeleteFile(url))
}

func TestLocalStorage_DeleteFile_RejectsTraversal(t *testing.T) {
	t.Parallel()

	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	err = storage.DeleteFile("http://localhost:8080/uploads/../../etc/passwd")
	require.Error(t, err)
}

func TestLocalStorage_DeleteFile_EmptyURL(t *testing.T) {
	t.Parallel()

	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile(""))
}
