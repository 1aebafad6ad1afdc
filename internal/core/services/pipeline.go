// Package services coordinates the five pipeline stages.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ewilliams-labs/trackline/internal/config"
	"github.com/ewilliams-labs/trackline/internal/core/domain"
	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

// Pipeline runs acquire, load, clean/merge, transform and
// persist/report in order. Stages are pure functions of their inputs;
// the only shared state is the injected adapters.
type Pipeline struct {
	source   ports.DatasetSource
	loader   ports.TrackLoader
	store    ports.TrackStore
	renderer ports.ChartRenderer
	exporter ports.ReportExporter
	cfg      config.Config
	log      *slog.Logger
}

// NewPipeline constructs a Pipeline.
func NewPipeline(
	source ports.DatasetSource,
	loader ports.TrackLoader,
	store ports.TrackStore,
	renderer ports.ChartRenderer,
	exporter ports.ReportExporter,
	cfg config.Config,
	log *slog.Logger,
) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		source:   source,
		loader:   loader,
		store:    store,
		renderer: renderer,
		exporter: exporter,
		cfg:      cfg,
		log:      log,
	}
}

// Run executes the whole pipeline. A failed acquisition is logged and
// the run continues on whatever files are already on disk; every other
// stage failure halts the run with a *StageError carrying its kind.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.source.Download(ctx, p.cfg.Dataset.Slug, p.cfg.Dataset.Dir); err != nil {
		// Deliberate policy: stale local files may still serve the run.
		p.log.Warn("dataset acquisition failed, continuing with local files",
			"dataset", p.cfg.Dataset.Slug, "error", err)
	} else {
		p.log.Info("dataset acquired", "dataset", p.cfg.Dataset.Slug, "dir", p.cfg.Dataset.Dir)
	}

	albums, err := p.loader.LoadAlbums(p.cfg.Files.Albums)
	if err != nil {
		return stageErr("load", KindMissingInput, err)
	}
	tracks, err := p.loader.LoadTracks(p.cfg.Files.Tracks)
	if err != nil {
		return stageErr("load", KindMissingInput, err)
	}
	p.log.Info("input loaded", "albums", len(albums), "tracks", len(tracks))

	cleaned := domain.CleanMerge(albums, tracks)
	kept := domain.Transform(cleaned, p.cfg.Rules.RadioMixMaxSec, p.cfg.Rules.MinPopularity)
	p.log.Info("records transformed", "merged", len(cleaned), "kept", len(kept))

	if err := p.store.Replace(ctx, p.cfg.Database.Table, kept); err != nil {
		return stageErr("persist", KindStorage, err)
	}
	p.log.Info("records persisted", "table", p.cfg.Database.Table, "rows", len(kept))

	return p.report(ctx)
}

func (p *Pipeline) report(ctx context.Context) error {
	from, to, err := p.cfg.ReportRange()
	if err != nil {
		return stageErr("report", KindRender, err)
	}

	labels, err := p.store.TopLabels(ctx, p.cfg.Database.Table, p.cfg.Report.LabelLimit)
	if err != nil {
		return stageErr("report", KindStorage, err)
	}
	popular, err := p.store.TopTracks(ctx, p.cfg.Database.Table, from, to, p.cfg.Report.TrackLimit)
	if err != nil {
		return stageErr("report", KindStorage, err)
	}

	labelTitle := fmt.Sprintf("Top %d Labels by Track Count", p.cfg.Report.LabelLimit)
	trackTitle := fmt.Sprintf("Top %d Popular Tracks (%d-%d)", p.cfg.Report.TrackLimit, from.Year(), to.Year())
	if err := p.renderer.RenderLabelCounts(p.cfg.Report.LabelChart, labelTitle, labels); err != nil {
		return stageErr("report", KindRender, err)
	}
	if err := p.renderer.RenderTrackPopularity(p.cfg.Report.TrackChart, trackTitle, popular); err != nil {
		return stageErr("report", KindRender, err)
	}
	if err := p.exporter.Export(p.cfg.Report.Workbook, labels, popular); err != nil {
		return stageErr("report", KindRender, err)
	}

	p.log.Info("report written",
		"labels", len(labels), "tracks", len(popular),
		"charts", []string{p.cfg.Report.LabelChart, p.cfg.Report.TrackChart},
		"workbook", p.cfg.Report.Workbook)

	return nil
}
