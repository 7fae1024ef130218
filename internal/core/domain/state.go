package domain

// PropagationState is the bookkeeping shared by every propagation step of a
// single run. It records which packages are waiting for a version decision
// and which have been fully processed.
type PropagationState struct {
	pending   map[string]string
	done      map[string]struct{}
	completed []string
}

// NewPropagationState creates an empty PropagationState.
func NewPropagationState() *PropagationState {
	return &PropagationState{
		pending: make(map[string]string),
		done:    make(map[string]struct{}),
	}
}

// Schedule records version as the pending version of name. A later call
// overwrites the earlier value.
func (s *PropagationState) Schedule(name, version string) {
	s.pending[name] = version
}

// Pending returns the pending version recorded for name.
func (s *PropagationState) Pending(name string) (string, bool) {
	v, ok := s.pending[name]
	return v, ok
}

// Complete marks name as processed and drops its pending entry.
// Completing a name twice is a no-op.
func (s *PropagationState) Complete(name string) {
	delete(s.pending, name)
	if _, ok := s.done[name]; ok {
		return
	}
	s.done[name] = struct{}{}
	s.completed = append(s.completed, name)
}

// IsDone reports whether name has already been processed in this run.
func (s *PropagationState) IsDone(name string) bool {
	_, ok := s.done[name]
	return ok
}

// Completed returns the processed package names in completion order.
func (s *PropagationState) Completed() []string {
	out := make([]string, len(s.completed))
	copy(out, s.completed)
	return out
}
