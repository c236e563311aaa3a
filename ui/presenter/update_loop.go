package presenter

import "time"

// Loop drives the harness presenter from the UI event loop.
//
// Tick runs one render pass and then invokes the scheduler callback, which
// re-arms the next tick on Tk's thread. The zero value is usable.
type Loop struct {
	Harness  *HarnessPresenter
	Schedule func()
}

func NewLoop(harness *HarnessPresenter, schedule func()) *Loop {
	return &Loop{Harness: harness, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Harness != nil {
		l.Harness.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
