package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"

	"github.com/revid-ai/framepulse/config"
	"github.com/revid-ai/framepulse/debug"
	"github.com/revid-ai/framepulse/ui/overlay"
	"github.com/revid-ai/framepulse/ui/presenter"
	"github.com/revid-ai/framepulse/ui/theme"
	"github.com/revid-ai/framepulse/ui/view"
)

const minTick = 5 * time.Millisecond

type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	container *AppContainer
	loop      *presenter.Loop
	tick      time.Duration
	afterID   string
}

// NewApp prepares the Tk window. Call Start to build the UI and run.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{cfg: cfg, logger: logger}

	// One tick per playback frame; faster rates are clamped so the event
	// loop stays responsive.
	a.tick = time.Duration(float64(time.Second) / *cfg.Playback.FrameRate)
	if a.tick < minTick {
		a.tick = minTick
	}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+80+80", *cfg.Harness.Width+48, *cfg.Harness.Height+200))
	return a
}

func (a *app) Start() {
	theme.InitStyles()

	a.container = BuildContainer(a.cfg, a.logger)
	rv := a.container.RootView
	harness := a.container.Harness

	handlers := view.Handlers{
		OnTogglePlay:      func() { harness.TogglePlay() },
		OnRestart:         harness.Restart,
		OnToggleLoop:      func() { harness.ToggleLoop() },
		OnToggleOverlay:   func() { rv.SetOverlayVisible(harness.ToggleOverlay()) },
		OnOverlayPosition: harness.SetOverlayPosition,
		OnScenario:        harness.SelectScenario,
		OnExit:            a.exitHandler,
	}
	rv.Build(
		a.container.Catalog.Titles(),
		overlay.Corners(),
		*a.cfg.Harness.Width,
		*a.cfg.Harness.Height,
		*a.cfg.Playback.Controls,
		handlers,
	)

	// Reflect initial state on the control surface.
	rv.SetPlaying(*a.cfg.Playback.Autoplay)
	rv.SetLoop(*a.cfg.Playback.Loop)
	rv.SetOverlayVisible(*a.cfg.Overlay.Enabled)
	if idx := cornerIndex(*a.cfg.Overlay.Position); idx > 0 && rv.PositionSel != nil {
		rv.PositionSel.Current(idx)
	}

	if a.cfg.Logging.Debug != nil && *a.cfg.Logging.Debug {
		debug.StartRuntimeLogger(2*time.Second, a.logger)
	}

	a.loop = presenter.NewLoop(harness, a.scheduleUpdate)
	a.logger.Info("harness.start",
		"tick", a.tick,
		"frame_rate", *a.cfg.Playback.FrameRate,
		"duration_frames", *a.cfg.Playback.DurationInFrames,
	)
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

// scheduleUpdate arms the next tick on Tk's event loop thread.
func (a *app) scheduleUpdate() {
	a.afterID = TclAfter(a.tick, func() { a.loop.Tick() })
}

func cornerIndex(name string) int {
	for i, c := range overlay.Corners() {
		if c == name {
			return i
		}
	}
	return 0
}
