package view

import (
	"fmt"
	"math"

	"github.com/revid-ai/framepulse/domain/perf"
	"github.com/revid-ai/framepulse/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SummaryPanel shows the session-level statistics fed by the latest
// snapshot.
type SummaryPanel interface {
	SetSummary(snap perf.Snapshot)
	Reset(label string)
}

type summaryPanel struct {
	titleLbl   *LabelWidget
	ratingLbl  *LabelWidget
	avgLbl     *LabelWidget
	rangeLbl   *LabelWidget
	fpsLbl     *LabelWidget
	samplesLbl *LabelWidget
	elapsedLbl *LabelWidget
}

// NewSummaryPanel creates the summary label row grid starting at the given
// row. Layout: title+rating on the first row, stat labels on the second.
func NewSummaryPanel(row int) SummaryPanel {
	s := &summaryPanel{
		titleLbl:   Label(Width(22)),
		ratingLbl:  Label(Width(12)),
		avgLbl:     Label(Width(14), Style(theme.StyleStatLabel)),
		rangeLbl:   Label(Width(20), Style(theme.StyleStatLabel)),
		fpsLbl:     Label(Width(12), Style(theme.StyleStatLabel)),
		samplesLbl: Label(Width(12), Style(theme.StyleStatLabel)),
		elapsedLbl: Label(Width(14), Style(theme.StyleStatLabel)),
	}
	Grid(s.titleLbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.2m"))
	Grid(s.ratingLbl, Row(row), Column(2), Sticky("w"), Padx("0.2m"))
	Grid(s.avgLbl, Row(row+1), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.rangeLbl, Row(row+1), Column(1), Sticky("w"), Padx("0.2m"))
	Grid(s.fpsLbl, Row(row+1), Column(2), Sticky("w"), Padx("0.2m"))
	Grid(s.samplesLbl, Row(row+1), Column(3), Sticky("w"), Padx("0.2m"))
	Grid(s.elapsedLbl, Row(row+1), Column(4), Sticky("w"), Padx("0.2m"))
	s.Reset("")
	return s
}

func (s *summaryPanel) SetSummary(snap perf.Snapshot) {
	if s == nil {
		return
	}
	s.configure(s.titleLbl, Txt(fmt.Sprintf("%s  (frame %d)", snap.Label, snap.Frame)))
	rating := snap.Rating.String()
	s.configure(s.ratingLbl, Txt(rating), Foreground(theme.RatingColor(rating)))
	s.configure(s.avgLbl, Txt(fmt.Sprintf("avg %.2fms", snap.AvgMs)), Foreground(theme.RatingColor(rating)))
	s.configure(s.rangeLbl, Txt(fmt.Sprintf("min %s / max %.2fms", fmtMin(snap.MinMs), snap.MaxMs)))
	s.configure(s.fpsLbl, Txt(fmt.Sprintf("%.1f fps", snap.FPS)), Foreground(theme.FPSColor(snap.FPS)))
	s.configure(s.samplesLbl, Txt(fmt.Sprintf("%d samples", snap.Count)))
	s.configure(s.elapsedLbl, Txt(fmtElapsed(snap.ElapsedSeconds)))
}

func (s *summaryPanel) Reset(label string) {
	if s == nil {
		return
	}
	if label == "" {
		label = "<no scenario>"
	}
	s.configure(s.titleLbl, Txt(label))
	s.configure(s.ratingLbl, Txt("-"), Foreground(theme.ColorTextMuted))
	s.configure(s.avgLbl, Txt("avg -"), Foreground(theme.ColorTextMuted))
	s.configure(s.rangeLbl, Txt("min - / max -"))
	s.configure(s.fpsLbl, Txt("- fps"), Foreground(theme.ColorTextMuted))
	s.configure(s.samplesLbl, Txt("0 samples"))
	s.configure(s.elapsedLbl, Txt("00:00"))
}

// configure guards against a destroyed widget during shutdown.
func (s *summaryPanel) configure(lbl *LabelWidget, opts ...Opt) {
	if lbl == nil {
		return
	}
	defer func() { _ = recover() }()
	lbl.Configure(opts...)
}

func fmtMin(ms float64) string {
	if math.IsInf(ms, 1) {
		return "-"
	}
	return fmt.Sprintf("%.2fms", ms)
}

func fmtElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
