// Package domain holds the record types and the pure clean/transform
// logic of the pipeline.
package domain

import "time"

// AlbumRow is one raw row of the albums CSV, untyped as read.
type AlbumRow struct {
	TrackID     string
	TrackName   string
	ReleaseDate string
	Label       string
	DurationSec string
}

// TrackRow is one raw row of the tracks CSV, untyped as read. The file's
// "id" column is the join key and maps to TrackID.
type TrackRow struct {
	TrackID    string
	Popularity string
	Explicit   string
}

// Track is one cleaned, merged record. Album-side values win for name,
// date, label and duration; the track side contributes popularity and
// the explicit flag. Nil means the source value was absent or malformed.
type Track struct {
	ID          string
	Name        string
	ReleaseDate *time.Time
	Label       string
	DurationSec *float64
	Popularity  *int64
	Explicit    bool
	RadioMix    *bool
}

// LabelCount is one row of the labels-by-track-count report query.
type LabelCount struct {
	Label      string
	TrackCount int64
}

// TrackPopularity is one row of the popular-tracks report query.
type TrackPopularity struct {
	Name       string
	Popularity int64
}
