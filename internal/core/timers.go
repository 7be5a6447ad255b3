package core

import "time"

// roomTimer is a cancellable single-purpose timer handle. Cancelling an
// unset or already-fired timer is a no-op.
type roomTimer struct {
	t *time.Timer
}

func (rt *roomTimer) schedule(d time.Duration, fn func()) {
	rt.cancel()
	rt.t = time.AfterFunc(d, fn)
}

func (rt *roomTimer) cancel() {
	if rt.t != nil {
		rt.t.Stop()
		rt.t = nil
	}
}

// roundTimers owns one handle per purpose, so cancellation on a state
// transition is structurally enforced.
type roundTimers struct {
	halfTime     roomTimer
	finalWarning roomTimer
	timeout      roomTimer
	transition   roomTimer
}

// cancelRound drops the three in-round timers.
func (ts *roundTimers) cancelRound() {
	ts.halfTime.cancel()
	ts.finalWarning.cancel()
	ts.timeout.cancel()
}

// cancelAll additionally drops the inter-round/restart transition.
func (ts *roundTimers) cancelAll() {
	ts.cancelRound()
	ts.transition.cancel()
}

// pending reports how many handles are currently scheduled.
func (ts *roundTimers) pending() int {
	n := 0
	for _, rt := range []*roomTimer{&ts.halfTime, &ts.finalWarning, &ts.timeout, &ts.transition} {
		if rt.t != nil {
			n++
		}
	}
	return n
}
