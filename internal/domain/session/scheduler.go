package session

import "sort"

// dueEpsilon absorbs float drift from summing per-frame deltas,
// so a 3s delay at 60 fps fires on frame 180 and not 181
const dueEpsilon = 1e-9

// TaskID identifies a deferred action
type TaskID uint64

type task struct {
	id  TaskID
	due float64
	fn  func()
}

// Scheduler runs deferred actions once enough tick time has elapsed.
// Time only moves through Advance; nothing here blocks.
type Scheduler struct {
	now     float64
	nextID  TaskID
	pending []task
	firing  []task // due actions not yet run in the current Advance
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// After schedules fn to run once delay seconds of tick time have elapsed
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.pending = append(s.pending, task{id: id, due: s.now + delay, fn: fn})
	return id
}

// Cancel discards a pending action. It returns false if the action already ran or is unknown.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	for i, t := range s.firing {
		if t.id == id {
			s.firing = append(s.firing[:i], s.firing[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves scheduler time forward and runs every action that is due.
// Due actions run in due-time order, ties in scheduling order.
// Actions scheduled while running are picked up by a later Advance.
func (s *Scheduler) Advance(dt float64) error {
	if dt < 0 {
		return ErrNegativeDelta
	}
	s.now += dt

	var due, keep []task
	for _, t := range s.pending {
		if t.due <= s.now+dueEpsilon {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	s.pending = keep

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })

	// An action may Cancel or Clear the ones after it
	s.firing = due
	for len(s.firing) > 0 {
		t := s.firing[0]
		s.firing = s.firing[1:]
		if t.fn != nil {
			t.fn()
		}
	}
	return nil
}

// Clear discards every pending action
func (s *Scheduler) Clear() {
	s.pending = nil
	s.firing = nil
}

// Pending returns the number of actions waiting to run
func (s *Scheduler) Pending() int {
	return len(s.pending) + len(s.firing)
}

// Now returns the elapsed tick time in seconds
func (s *Scheduler) Now() float64 {
	return s.now
}
