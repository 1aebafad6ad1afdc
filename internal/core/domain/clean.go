package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Release dates in the dataset come in several granularities; anything
// that matches none of these becomes nil rather than an error.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
}

// CleanMerge left-joins the album rows onto the track rows by track id
// and coerces every field to its cleaned type. Every album row is
// preserved; tracks without an album row are dropped, and album rows
// without a track match get nil popularity and a non-explicit default.
// Malformed dates and numbers become nil, never an error.
func CleanMerge(albums []AlbumRow, tracks []TrackRow) []Track {
	byID := make(map[string]TrackRow, len(tracks))
	for _, t := range tracks {
		byID[t.TrackID] = t
	}

	out := make([]Track, 0, len(albums))
	for _, a := range albums {
		rec := Track{
			ID:          a.TrackID,
			Name:        TitleCase(strings.TrimSpace(a.TrackName)),
			ReleaseDate: parseDate(a.ReleaseDate),
			Label:       TitleCase(strings.TrimSpace(a.Label)),
			DurationSec: parseFloat(a.DurationSec),
		}
		if t, ok := byID[a.TrackID]; ok {
			rec.Popularity = parseInt(t.Popularity)
			rec.Explicit = parseBool(t.Explicit)
		}
		out = append(out, rec)
	}

	return out
}

func parseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range releaseDateLayouts {
		if when, err := time.Parse(layout, trimmed); err == nil {
			return &when
		}
	}
	return nil
}

func parseFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &val
}

func parseInt(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if val, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &val
	}
	// Popularity sometimes arrives as "55.0"; truncate rather than drop.
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		val := int64(f)
		return &val
	}
	return nil
}

func parseBool(raw string) bool {
	val, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return false
	}
	return val
}

// TitleCase upper-cases the first letter of every word and lower-cases
// the rest, treating any non-letter as a word boundary.
func TitleCase(input string) string {
	var out strings.Builder
	out.Grow(len(input))

	prevLetter := false
	for _, r := range input {
		if unicode.IsLetter(r) {
			if prevLetter {
				out.WriteRune(unicode.ToLower(r))
			} else {
				out.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		out.WriteRune(r)
		prevLetter = false
	}

	return out.String()
}
