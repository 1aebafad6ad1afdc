// Package csvfile reads the album and track input files into raw rows,
// mapping columns by header name.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ewilliams-labs/trackline/internal/core/domain"
	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

// Loader implements the track loader port over local CSV files.
type Loader struct{}

// compile-time interface assertion
var _ ports.TrackLoader = Loader{}

// NewLoader constructs a Loader.
func NewLoader() Loader {
	return Loader{}
}

// LoadAlbums reads the albums CSV. Required headers: track_id,
// track_name, release_date, label, duration_sec. Extra columns are
// ignored.
func (Loader) LoadAlbums(path string) ([]domain.AlbumRow, error) {
	var out []domain.AlbumRow
	err := readRows(path, []string{"track_id", "track_name", "release_date", "label", "duration_sec"},
		func(get func(string) string) {
			out = append(out, domain.AlbumRow{
				TrackID:     get("track_id"),
				TrackName:   get("track_name"),
				ReleaseDate: get("release_date"),
				Label:       get("label"),
				DurationSec: get("duration_sec"),
			})
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadTracks reads the tracks CSV. The key column may be named either
// "id" (as shipped in the dataset) or "track_id"; it is always exposed
// as TrackID.
func (Loader) LoadTracks(path string) ([]domain.TrackRow, error) {
	var out []domain.TrackRow
	err := readRows(path, []string{"id", "track_popularity", "explicit"},
		func(get func(string) string) {
			out = append(out, domain.TrackRow{
				TrackID:    get("id"),
				Popularity: get("track_popularity"),
				Explicit:   get("explicit"),
			})
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// readRows streams a CSV file, resolving the required columns from the
// header row and invoking visit once per record with a column accessor.
func readRows(path string, required []string, visit func(get func(string) string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("csv loader: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Tolerate ragged rows; missing cells read as empty.

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("csv loader: read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	// The dataset's tracks file names its key column "id"; accept
	// "track_id" as an alias in either direction.
	if _, ok := index["id"]; !ok {
		if i, ok := index["track_id"]; ok {
			index["id"] = i
		}
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("csv loader: %s: missing required column %q", path, name)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("csv loader: read %s: %w", path, err)
		}
		visit(func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		})
	}

	return nil
}
