package app

import (
	"image/color"
	"log/slog"
	"strconv"

	"github.com/revid-ai/framepulse/config"
	"github.com/revid-ai/framepulse/domain/perf"
	"github.com/revid-ai/framepulse/domain/playback"
	"github.com/revid-ai/framepulse/scenario"
	"github.com/revid-ai/framepulse/ui/model"
	"github.com/revid-ai/framepulse/ui/overlay"
	"github.com/revid-ai/framepulse/ui/presenter"
	"github.com/revid-ai/framepulse/ui/view"
)

// AppContainer assembles the catalog, models, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Catalog  *scenario.Catalog
	Metrics  *model.MetricsModel
	RootView *view.RootView

	Overlay *presenter.OverlayPresenter
	Harness *presenter.HarnessPresenter
	Loop    *presenter.Loop
}

// BuildContainer constructs all components. Side effects are limited to
// reading the optional scenario manifest.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}

	opts := scenario.Options{
		Width:      *cfg.Harness.Width,
		Height:     *cfg.Harness.Height,
		Background: parseHexColor(*cfg.Harness.Background),
	}
	c.Catalog = scenario.NewCatalog(opts, logger)
	if manifest := deref(cfg.Scenario.Manifest); manifest != "" {
		if err := c.Catalog.LoadManifest(manifest); err != nil {
			logger.Error("scenario manifest", "path", manifest, "error", err)
		}
	}

	c.Metrics = model.NewMetricsModel()
	c.RootView = view.NewRootView(logger)
	c.Overlay = presenter.NewOverlayPresenter(overlay.Options{
		Visible:  *cfg.Overlay.Enabled,
		Position: overlay.ParseCorner(*cfg.Overlay.Position),
		Label:    deref(cfg.Overlay.Label),
	})

	params := playback.Params{
		FrameRate:        *cfg.Playback.FrameRate,
		DurationInFrames: *cfg.Playback.DurationInFrames,
		Autoplay:         *cfg.Playback.Autoplay,
		Loop:             *cfg.Playback.Loop,
	}

	// External metrics consumer: log the rating band transitions so a run
	// leaves an audit trail of when a scenario left its budget.
	lastRating := perf.Rating(-1)
	onMetrics := func(snap perf.Snapshot) {
		if snap.Rating == lastRating {
			return
		}
		lastRating = snap.Rating
		logger.Info("perf.rating",
			"scenario", snap.Label,
			"rating", snap.Rating.String(),
			"avg_ms", snap.AvgMs,
			"fps", snap.FPS,
		)
	}

	c.Harness = presenter.NewHarnessPresenter(
		c.Catalog, params, c.Metrics, c.Overlay,
		c.RootView, c.RootView, c.RootView,
		onMetrics, nil, logger,
	)
	return c
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseHexColor converts "#rrggbb" to an opaque RGBA; validation upstream
// guarantees the shape, so a short or broken value falls back to black.
func parseHexColor(s string) color.RGBA {
	out := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return out
	}
	if v, err := strconv.ParseUint(s[1:3], 16, 8); err == nil {
		out.R = uint8(v)
	}
	if v, err := strconv.ParseUint(s[3:5], 16, 8); err == nil {
		out.G = uint8(v)
	}
	if v, err := strconv.ParseUint(s[5:7], 16, 8); err == nil {
		out.B = uint8(v)
	}
	return out
}
