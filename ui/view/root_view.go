package view

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/revid-ai/framepulse/domain/perf"
	"github.com/revid-ai/framepulse/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers bundles the user-action callbacks the root view wires to its
// widgets.
type Handlers struct {
	OnTogglePlay      func()
	OnRestart         func()
	OnToggleLoop      func()
	OnToggleOverlay   func()
	OnOverlayPosition func(name string)
	OnScenario        func(title string)
	OnExit            func()
}

// RootView composes the top-level harness layout: transport bar, stage and
// summary panel. It exposes minimal state; presenters talk to it through the
// small per-concern interfaces in ui/presenter.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Stage   Stage
	Summary SummaryPanel

	// Widgets
	playBtn     *ButtonWidget
	loopBtn     *ButtonWidget
	overlayBtn  *ButtonWidget
	frameLbl    *LabelWidget
	ScenarioSel *TComboboxWidget
	PositionSel *TComboboxWidget
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. scenarioTitles feeds the selection dropdown;
// positions feeds the overlay corner dropdown. showControls false omits the
// transport button row (playback still runs, driven by config).
func (rv *RootView) Build(scenarioTitles, positions []string, maxW, maxH int, showControls bool, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: transport buttons
	if showControls {
		btnFrame := Frame()
		Grid(btnFrame, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))

		rv.playBtn = Button(Txt("Pause"), Style(theme.StylePrimaryButton), Command(h.OnTogglePlay))
		Grid(rv.playBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
		restartBtn := Button(Txt("Restart"), Command(h.OnRestart))
		Grid(restartBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
		rv.loopBtn = Button(Txt("Loop: off"), Command(h.OnToggleLoop))
		Grid(rv.loopBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))
		rv.overlayBtn = Button(Txt("Overlay: on"), Command(h.OnToggleOverlay))
		Grid(rv.overlayBtn, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"))
		rv.frameLbl = Label(Txt("frame 0 / 0"), Borderwidth(1), Relief("ridge"))
		Grid(rv.frameLbl, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.4m"))
		themeBtn := Button(Txt("Theme"), Command(func() { theme.ToggleDark() }))
		Grid(themeBtn, In(btnFrame), Row(0), Column(5), Sticky("we"), Padx("0.2m"))
		exitBtn := Button(Txt("Exit"), Style(theme.StyleDangerButton), Command(h.OnExit))
		Grid(exitBtn, In(btnFrame), Row(0), Column(6), Sticky("e"), Padx("0.2m"))
	}

	// Row 1: scenario + overlay position dropdowns
	if len(scenarioTitles) == 0 {
		scenarioTitles = []string{"<none>"}
	}
	rv.ScenarioSel = TCombobox(Values(scenarioTitles), Width(26))
	Grid(rv.ScenarioSel, Row(1), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	rv.ScenarioSel.Current(0)
	Bind(rv.ScenarioSel, "<<ComboboxSelected>>", Command(func() {
		rv.comboPick(rv.ScenarioSel, scenarioTitles, h.OnScenario)
	}))

	rv.PositionSel = TCombobox(Values(positions), Width(14))
	Grid(rv.PositionSel, Row(1), Column(2), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	if len(positions) > 0 {
		rv.PositionSel.Current(0)
	}
	Bind(rv.PositionSel, "<<ComboboxSelected>>", Command(func() {
		rv.comboPick(rv.PositionSel, positions, h.OnOverlayPosition)
	}))

	// Row 2: stage, rows 3-4: summary
	rv.Stage = NewStage(2, maxW, maxH)
	rv.Summary = NewSummaryPanel(3)
}

// comboPick resolves the combobox selection index back into its value.
func (rv *RootView) comboPick(sel *TComboboxWidget, values []string, fn func(string)) {
	if sel == nil || fn == nil {
		return
	}
	idxStr := sel.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(values) {
		if rv.logger != nil {
			rv.logger.Error("combobox selection parse", "error", err, "index", idxStr)
		}
		return
	}
	fn(values[idx])
}

// --- presenter view contracts ---

// SetFrame pushes the composited frame to the stage.
func (rv *RootView) SetFrame(img *image.RGBA) {
	if rv != nil && rv.Stage != nil {
		rv.Stage.UpdateFrame(img)
	}
}

// SetSummary updates the summary panel from the latest snapshot.
func (rv *RootView) SetSummary(snap perf.Snapshot) {
	if rv != nil && rv.Summary != nil {
		rv.Summary.SetSummary(snap)
	}
}

// ResetSummary clears the summary panel for a freshly mounted scenario.
func (rv *RootView) ResetSummary(label string) {
	if rv != nil && rv.Summary != nil {
		rv.Summary.Reset(label)
	}
}

// SetFrameCounter updates the frame position readout.
func (rv *RootView) SetFrameCounter(frame, total int) {
	if rv == nil || rv.frameLbl == nil {
		return
	}
	func() {
		defer func() { _ = recover() }()
		rv.frameLbl.Configure(Txt("frame " + strconv.Itoa(frame) + " / " + strconv.Itoa(total)))
	}()
}

// SetPlaying flips the play/pause button caption.
func (rv *RootView) SetPlaying(playing bool) {
	if rv == nil || rv.playBtn == nil {
		return
	}
	txt := "Play"
	if playing {
		txt = "Pause"
	}
	rv.configure(rv.playBtn, Txt(txt))
}

// SetLoop reflects the looping mode on its toggle button.
func (rv *RootView) SetLoop(loop bool) {
	if rv == nil || rv.loopBtn == nil {
		return
	}
	txt := "Loop: off"
	if loop {
		txt = "Loop: on"
	}
	rv.configure(rv.loopBtn, Txt(txt))
}

// SetOverlayVisible reflects overlay visibility on its toggle button.
func (rv *RootView) SetOverlayVisible(visible bool) {
	if rv == nil || rv.overlayBtn == nil {
		return
	}
	txt := "Overlay: off"
	if visible {
		txt = "Overlay: on"
	}
	rv.configure(rv.overlayBtn, Txt(txt))
}

// configure guards against widget destruction racing shutdown.
func (rv *RootView) configure(w *ButtonWidget, opts ...Opt) {
	defer func() { _ = recover() }()
	w.Configure(opts...)
}
