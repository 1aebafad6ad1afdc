package excel_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ewilliams-labs/trackline/internal/adapters/excel"
	"github.com/ewilliams-labs/trackline/internal/core/domain"
)

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	labels := []domain.LabelCount{
		{Label: "Label1", TrackCount: 12},
		{Label: "Label2", TrackCount: 7},
	}
	tracks := []domain.TrackPopularity{
		{Name: "Song One", Popularity: 90},
	}

	require.NoError(t, excel.NewExporter().Export(path, labels, tracks))

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	assert.ElementsMatch(t, []string{"Top Labels", "Top Tracks"}, book.GetSheetList())

	header, err := book.GetCellValue("Top Labels", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Label", header)

	label, err := book.GetCellValue("Top Labels", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Label1", label)

	count, err := book.GetCellValue("Top Labels", "B3")
	require.NoError(t, err)
	assert.Equal(t, "7", count)

	name, err := book.GetCellValue("Top Tracks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Song One", name)
}

func TestExportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, excel.NewExporter().Export(path, nil, nil))

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	header, err := book.GetCellValue("Top Tracks", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Track Name", header)
}
