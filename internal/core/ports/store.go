package ports

import (
	"context"
	"time"

	"github.com/ewilliams-labs/trackline/internal/core/domain"
)

// TrackStore persists the transformed records and serves the two
// read-only report queries.
type TrackStore interface {
	// Replace swaps the named table's contents for rows. The previous
	// contents are never observed half-written.
	Replace(ctx context.Context, table string, rows []domain.Track) error

	TopLabels(ctx context.Context, table string, limit int) ([]domain.LabelCount, error)
	TopTracks(ctx context.Context, table string, from, to time.Time, limit int) ([]domain.TrackPopularity, error)

	Close() error
}
