package presenter

import (
	"image"
	"log/slog"
	"time"

	"github.com/revid-ai/framepulse/domain/perf"
	"github.com/revid-ai/framepulse/domain/playback"
	"github.com/revid-ai/framepulse/scenario"
	"github.com/revid-ai/framepulse/ui/model"
)

const metricsLogInterval = 5 * time.Second

// ScenarioCatalog narrows what the presenter needs from the scenario layer.
type ScenarioCatalog interface {
	ByTitle(title string) (scenario.Scenario, bool)
	First() scenario.Scenario
}

// StageView displays the rendered (and possibly overlaid) frame.
type StageView interface {
	SetFrame(img *image.RGBA)
}

// SummaryView shows the session summary derived from the latest snapshot.
type SummaryView interface {
	SetSummary(snap perf.Snapshot)
	ResetSummary(label string)
}

// TransportView reflects transport state in the control surface.
type TransportView interface {
	SetFrameCounter(frame, total int)
	SetPlaying(playing bool)
	SetLoop(loop bool)
}

// HarnessPresenter is the aggregating host: it composes the playback
// transport with one sampler per measured scenario, re-keys both when the
// scenario identity changes, keeps the latest snapshot for the summary panel
// and forwards every snapshot to the externally supplied observer.
type HarnessPresenter struct {
	catalog ScenarioCatalog
	params  playback.Params
	clock   perf.Clock
	logger  *slog.Logger

	metrics   *model.MetricsModel
	overlay   *OverlayPresenter
	stage     StageView
	summary   SummaryView
	transView TransportView
	onMetrics perf.Observer

	current   scenario.Scenario
	sampler   *perf.Sampler
	transport *playback.Transport
	lastLog   time.Time
}

// NewHarnessPresenter wires the host. onMetrics may be nil; clock defaults to
// the realtime clock when nil.
func NewHarnessPresenter(
	catalog ScenarioCatalog,
	params playback.Params,
	metrics *model.MetricsModel,
	overlayP *OverlayPresenter,
	stage StageView,
	summary SummaryView,
	transView TransportView,
	onMetrics perf.Observer,
	clock perf.Clock,
	logger *slog.Logger,
) *HarnessPresenter {
	if clock == nil {
		clock = perf.RealtimeClock{}
	}
	p := &HarnessPresenter{
		catalog:   catalog,
		params:    params,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
		overlay:   overlayP,
		stage:     stage,
		summary:   summary,
		transView: transView,
		onMetrics: onMetrics,
	}
	if catalog != nil {
		p.mount(catalog.First())
	}
	return p
}

// SelectScenario switches the measured subject by display title. Selecting
// the current scenario is a no-op; anything else discards the sampler and
// transport so metrics never carry over between subjects.
func (p *HarnessPresenter) SelectScenario(title string) {
	if p == nil || p.catalog == nil {
		return
	}
	s, ok := p.catalog.ByTitle(title)
	if !ok {
		if p.logger != nil {
			p.logger.Warn("scenario.unknown", "title", title)
		}
		return
	}
	if p.current != nil && s.ID() == p.current.ID() {
		return
	}
	p.mount(s)
}

// mount installs a scenario with a fresh sampler (fresh window, fresh session
// clock) and a restarted transport.
func (p *HarnessPresenter) mount(s scenario.Scenario) {
	p.current = s
	if s == nil {
		p.sampler = nil
		p.transport = nil
		return
	}
	p.sampler = perf.NewSamplerWithClock(s.Title(), p.handleSnapshot, p.clock)
	p.transport = playback.NewTransport(p.params, p.clock.Now())
	if p.metrics != nil {
		p.metrics.Reset(s.Title())
	}
	if p.summary != nil {
		p.summary.ResetSummary(s.Title())
	}
	if p.logger != nil {
		p.logger.Info("scenario.mounted", "id", s.ID(), "title", s.Title())
	}
}

// handleSnapshot is the sampler's observer: runs synchronously once per
// distinct frame, in frame order.
func (p *HarnessPresenter) handleSnapshot(snap perf.Snapshot) {
	if p.metrics != nil {
		p.metrics.Set(snap)
	}
	if p.summary != nil {
		p.summary.SetSummary(snap)
	}
	if p.onMetrics != nil {
		p.onMetrics(snap)
	}
}

// Tick runs one render pass: advance the transport, render the scenario
// frame under measurement, overlay the latest snapshot and push the result
// to the stage. Call from the UI update loop only.
func (p *HarnessPresenter) Tick(now time.Time) {
	if p == nil || p.current == nil || p.sampler == nil {
		return
	}
	frame := p.transport.Advance(now)

	p.sampler.BeginPass()
	img := p.current.RenderFrame(frame)
	snap, sampled := p.sampler.CompletePass(frame)
	if !sampled {
		snap = p.sampler.Snapshot()
	}

	if p.overlay != nil {
		p.overlay.Apply(img, snap)
	}
	if p.stage != nil {
		p.stage.SetFrame(img)
	}
	scenario.RecycleFrame(img)

	if p.transView != nil {
		p.transView.SetFrameCounter(frame, p.transport.Params().DurationInFrames)
		p.transView.SetPlaying(p.transport.Playing())
	}
	if sampled {
		p.maybeLog(now, snap)
	}
}

func (p *HarnessPresenter) maybeLog(now time.Time, snap perf.Snapshot) {
	if p.logger == nil || now.Sub(p.lastLog) < metricsLogInterval {
		return
	}
	p.lastLog = now
	p.logger.Debug("perf.snapshot",
		"scenario", snap.Label,
		"frame", snap.Frame,
		"avg_ms", snap.AvgMs,
		"fps", snap.FPS,
		"rating", snap.Rating.String(),
		"samples", snap.Count,
	)
}

// TogglePlay flips play/pause and reports the new playing state.
func (p *HarnessPresenter) TogglePlay() bool {
	if p == nil || p.transport == nil {
		return false
	}
	p.transport.Toggle(p.clock.Now())
	playing := p.transport.Playing()
	if p.transView != nil {
		p.transView.SetPlaying(playing)
	}
	return playing
}

// Restart rewinds the current scenario to frame 0 and plays.
func (p *HarnessPresenter) Restart() {
	if p == nil || p.transport == nil {
		return
	}
	p.transport.Restart(p.clock.Now())
	if p.transView != nil {
		p.transView.SetPlaying(true)
	}
}

// ToggleLoop flips looping and reports the new value.
func (p *HarnessPresenter) ToggleLoop() bool {
	if p == nil || p.transport == nil {
		return false
	}
	loop := !p.transport.Params().Loop
	p.transport.SetLoop(loop)
	p.params.Loop = loop
	if p.transView != nil {
		p.transView.SetLoop(loop)
	}
	return loop
}

// ToggleOverlay flips overlay visibility and reports the new value.
func (p *HarnessPresenter) ToggleOverlay() bool {
	if p == nil || p.overlay == nil {
		return false
	}
	return p.overlay.ToggleVisible()
}

// SetOverlayPosition re-docks the overlay panel.
func (p *HarnessPresenter) SetOverlayPosition(name string) {
	if p == nil || p.overlay == nil {
		return
	}
	p.overlay.SetPosition(name)
}

// Latest exposes the current snapshot (zero-state before any sample).
func (p *HarnessPresenter) Latest() perf.Snapshot {
	if p == nil || p.sampler == nil {
		return perf.Snapshot{}
	}
	return p.sampler.Snapshot()
}
