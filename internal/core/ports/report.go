package ports

import "github.com/ewilliams-labs/trackline/internal/core/domain"

// ChartRenderer writes a report result set as a horizontal bar chart
// image, top-ranked entry first.
type ChartRenderer interface {
	RenderLabelCounts(path string, title string, rows []domain.LabelCount) error
	RenderTrackPopularity(path string, title string, rows []domain.TrackPopularity) error
}

// ReportExporter writes both report result sets into one workbook.
type ReportExporter interface {
	Export(path string, labels []domain.LabelCount, tracks []domain.TrackPopularity) error
}
