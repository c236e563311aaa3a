package perf

// Rating buckets an average render time into a qualitative band. The
// thresholds are policy constants; FrameBudget60Ms is the 60fps budget
// (1000/60) and anything at or above it is considered poor.
type Rating int

const (
	RatingExcellent Rating = iota
	RatingGood
	RatingAcceptable
	RatingPoor
)

// Render-time thresholds in milliseconds. Half-open intervals, lowest band
// wins on a boundary's left edge: [0,4) excellent, [4,8) good,
// [8,16.67) acceptable, [16.67,inf) poor.
const (
	ExcellentMaxMs  = 4.0
	GoodMaxMs       = 8.0
	FrameBudget60Ms = 16.67
)

// Frame-rate display thresholds (fps). Views color an estimated frame rate
// green at or above FPSGreenMin, amber at or above FPSAmberMin, red below.
const (
	FPSGreenMin = 60.0
	FPSAmberMin = 30.0
)

// Classify maps an average render time in milliseconds to its Rating.
// A zero or negative average classifies as excellent; this is the documented
// empty-window default (no data reads as "no cost yet", not as poor).
func Classify(avgMs float64) Rating {
	switch {
	case avgMs < ExcellentMaxMs:
		return RatingExcellent
	case avgMs < GoodMaxMs:
		return RatingGood
	case avgMs < FrameBudget60Ms:
		return RatingAcceptable
	default:
		return RatingPoor
	}
}

func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "excellent"
	case RatingGood:
		return "good"
	case RatingAcceptable:
		return "acceptable"
	case RatingPoor:
		return "poor"
	default:
		return "unknown"
	}
}
