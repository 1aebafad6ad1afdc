// Package kaggle downloads dataset archives from the Kaggle API and
// unpacks them to local storage.
package kaggle

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

// DefaultBaseURL is the public Kaggle API endpoint.
const DefaultBaseURL = "https://www.kaggle.com/api/v1"

// Client is an HTTP client for the Kaggle dataset API. Requests carry
// HTTP basic auth with the account username and API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	key        string
}

// compile-time interface assertion
var _ ports.DatasetSource = (*Client)(nil)

// NewClient constructs a new Kaggle client.
func NewClient(httpClient *http.Client, baseURL, username, key string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		key:        key,
	}
}

// Download fetches the dataset archive identified by its owner/name
// slug and unpacks every file into dir. The archive is streamed to a
// temp file first so a failed transfer never leaves partial files in
// dir.
func (c *Client) Download(ctx context.Context, dataset string, dir string) error {
	if c.username == "" || c.key == "" {
		return fmt.Errorf("kaggle adapter: missing credentials (KAGGLE_USERNAME / KAGGLE_KEY)")
	}

	url := fmt.Sprintf("%s/datasets/download/%s", c.baseURL, dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("kaggle adapter: %w", err)
	}
	req.SetBasicAuth(c.username, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kaggle adapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kaggle adapter: status %d", resp.StatusCode)
	}

	archive, err := os.CreateTemp("", "kaggle-*.zip")
	if err != nil {
		return fmt.Errorf("kaggle adapter: create temp archive: %w", err)
	}
	defer os.Remove(archive.Name())
	defer archive.Close()

	if _, err := io.Copy(archive, resp.Body); err != nil {
		return fmt.Errorf("kaggle adapter: download archive: %w", err)
	}

	if err := unzip(archive.Name(), dir); err != nil {
		return fmt.Errorf("kaggle adapter: %w", err)
	}

	return nil
}

func unzip(archivePath string, dir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	for _, entry := range reader.File {
		if err := extract(entry, dir); err != nil {
			return err
		}
	}

	return nil
}

func extract(entry *zip.File, dir string) error {
	// Guard against path traversal in archive entry names.
	dest := filepath.Join(dir, filepath.Clean(entry.Name))
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal archive path %q", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("extract %s: %w", entry.Name, err)
	}

	return nil
}
