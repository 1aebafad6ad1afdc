// Package excel writes the report result sets into a single XLSX
// workbook, one sheet per query.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ewilliams-labs/trackline/internal/core/domain"
	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

const (
	labelSheet = "Top Labels"
	trackSheet = "Top Tracks"
)

// Exporter implements the report exporter port with excelize.
type Exporter struct{}

// compile-time interface assertion
var _ ports.ReportExporter = Exporter{}

// NewExporter constructs an Exporter.
func NewExporter() Exporter {
	return Exporter{}
}

// Export writes both result sets to path, replacing any existing file.
func (Exporter) Export(path string, labels []domain.LabelCount, tracks []domain.TrackPopularity) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", labelSheet); err != nil {
		return fmt.Errorf("excel exporter: %w", err)
	}
	if _, err := book.NewSheet(trackSheet); err != nil {
		return fmt.Errorf("excel exporter: %w", err)
	}

	if err := writeSheet(book, labelSheet, []string{"Label", "Track Count"}, len(labels), func(i int) []any {
		return []any{labels[i].Label, labels[i].TrackCount}
	}); err != nil {
		return err
	}
	if err := writeSheet(book, trackSheet, []string{"Track Name", "Popularity"}, len(tracks), func(i int) []any {
		return []any{tracks[i].Name, tracks[i].Popularity}
	}); err != nil {
		return err
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("excel exporter: save %s: %w", path, err)
	}

	return nil
}

func writeSheet(book *excelize.File, sheet string, header []string, rows int, cells func(int) []any) error {
	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("excel exporter: write %s header: %w", sheet, err)
	}
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excel exporter: %w", err)
		}
		row := cells(i)
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("excel exporter: write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
