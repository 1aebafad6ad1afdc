package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewilliams-labs/trackline/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }

func TestTransformFilters(t *testing.T) {
	cleaned := domain.CleanMerge(sampleAlbums(), sampleTracks())
	kept := domain.Transform(cleaned, 180, 50)

	// Only ids 1 and 3 survive: non-explicit and popularity above 50.
	require.Len(t, kept, 2)
	assert.Equal(t, "1", kept[0].ID)
	assert.Equal(t, "3", kept[1].ID)
	for _, r := range kept {
		assert.False(t, r.Explicit)
		require.NotNil(t, r.Popularity)
		assert.Greater(t, *r.Popularity, int64(50))
	}
}

func TestTransformRadioMix(t *testing.T) {
	rows := []domain.Track{
		{ID: "short", DurationSec: floatPtr(120), Popularity: intPtr(60)},
		{ID: "edge", DurationSec: floatPtr(180), Popularity: intPtr(60)},
		{ID: "long", DurationSec: floatPtr(181), Popularity: intPtr(60)},
		{ID: "unknown", DurationSec: nil, Popularity: intPtr(60)},
	}

	kept := domain.Transform(rows, 180, 50)
	require.Len(t, kept, 4)

	require.NotNil(t, kept[0].RadioMix)
	assert.True(t, *kept[0].RadioMix)
	require.NotNil(t, kept[1].RadioMix)
	assert.True(t, *kept[1].RadioMix, "180s is still a radio mix")
	require.NotNil(t, kept[2].RadioMix)
	assert.False(t, *kept[2].RadioMix)
	// Unknown duration keeps the flag indeterminate.
	assert.Nil(t, kept[3].RadioMix)
}

func TestTransformNilPopularityExcluded(t *testing.T) {
	rows := []domain.Track{
		{ID: "no-pop", DurationSec: floatPtr(100)},
		{ID: "low", Popularity: intPtr(50)},
		{ID: "explicit", Popularity: intPtr(90), Explicit: true},
	}

	kept := domain.Transform(rows, 180, 50)
	assert.Empty(t, kept)
}
