package ports

import "github.com/ewilliams-labs/trackline/internal/core/domain"

// TrackLoader reads the two delimited input files into raw row slices.
type TrackLoader interface {
	LoadAlbums(path string) ([]domain.AlbumRow, error)
	LoadTracks(path string) ([]domain.TrackRow, error)
}
