package kaggle_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/trackline/internal/adapters/kaggle"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDownloadUnpacksArchive(t *testing.T) {
	archive := zipArchive(t, map[string]string{
		"albums.csv":        "track_id\n1\n",
		"nested/tracks.csv": "id\n1\n",
	})

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		user, key, ok := r.BasicAuth()
		if !ok || user != "alice" || key != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	dir := t.TempDir()
	client := kaggle.NewClient(server.Client(), server.URL, "alice", "secret")
	require.NoError(t, client.Download(context.Background(), "owner/dataset", dir))

	assert.Equal(t, "/datasets/download/owner/dataset", gotPath)

	albums, err := os.ReadFile(filepath.Join(dir, "albums.csv"))
	require.NoError(t, err)
	assert.Equal(t, "track_id\n1\n", string(albums))

	_, err = os.Stat(filepath.Join(dir, "nested", "tracks.csv"))
	assert.NoError(t, err)
}

func TestDownloadUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := kaggle.NewClient(server.Client(), server.URL, "alice", "wrong")
	err := client.Download(context.Background(), "owner/dataset", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestDownloadMissingCredentials(t *testing.T) {
	client := kaggle.NewClient(nil, "", "", "")
	err := client.Download(context.Background(), "owner/dataset", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")
}

func TestDownloadRejectsPathTraversal(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create("../escape.txt")
	require.NoError(t, err)
	_, err = entry.Write([]byte("nope"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	parent := t.TempDir()
	dir := filepath.Join(parent, "data")
	client := kaggle.NewClient(server.Client(), server.URL, "alice", "secret")
	err = client.Download(context.Background(), "owner/dataset", dir)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(parent, "escape.txt"))
	assert.True(t, os.IsNotExist(statErr), "traversal entry must not be written")
}
