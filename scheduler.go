package main

// Scheduler makes the current piece fall on its own. It is driven by the
// frame callback: every frame, Tick gets the current reading of a monotonic
// clock, in milliseconds, and drops the piece once DropIntervalMs has passed
// since the last automatic drop.
// The Scheduler is disarmed while the game is paused, over or idle. Arming
// it again moves the baseline to the current time, otherwise the time spent
// paused would count towards the next drop.
type Scheduler struct {
	Armed      bool
	BaselineMs int64
}

func (s *Scheduler) Arm(nowMs int64) {
	s.Armed = true
	s.BaselineMs = nowMs
}

func (s *Scheduler) Cancel() {
	s.Armed = false
}

// Rebase restarts the drop interval from nowMs without changing whether the
// scheduler is armed.
func (s *Scheduler) Rebase(nowMs int64) {
	s.BaselineMs = nowMs
}

// Tick returns true if the scheduler wants to be called again on the next
// frame.
func (s *Scheduler) Tick(w *World, nowMs int64) bool {
	if w.State != Running {
		s.Armed = false
		return false
	}
	if !s.Armed {
		return false
	}
	if nowMs-s.BaselineMs > w.Session.DropIntervalMs {
		w.SoftDrop()
		// The drop may have ended the game, which disarms the scheduler.
		s.BaselineMs = nowMs
	}
	return s.Armed
}
