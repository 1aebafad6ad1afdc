package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/trackline/internal/adapters/chart"
	"github.com/ewilliams-labs/trackline/internal/core/domain"
)

// PNG magic bytes
var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), len(pngHeader))
	assert.Equal(t, pngHeader, raw[:len(pngHeader)])
}

func TestRenderLabelCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.png")
	rows := []domain.LabelCount{
		{Label: "Label1", TrackCount: 30},
		{Label: "Label2", TrackCount: 20},
		{Label: "Label3", TrackCount: 10},
	}

	err := chart.NewRenderer().RenderLabelCounts(path, "Top 3 Labels by Track Count", rows)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderTrackPopularity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.png")
	rows := []domain.TrackPopularity{
		{Name: "Song One", Popularity: 90},
		{Name: "Song Two", Popularity: 75},
	}

	err := chart.NewRenderer().RenderTrackPopularity(path, "Top 2 Popular Tracks (2020-2023)", rows)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestRenderEmptyResultSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := chart.NewRenderer().RenderLabelCounts(path, "Nothing", nil)
	require.NoError(t, err)
	assertPNG(t, path)
}
