package diagnostics

import "sync"

// Sink is an append-only collector of diagnostics. Module-level passes may
// run concurrently in the surrounding pipeline, all appending to one shared
// sink, so every method is safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	errors []*DiagnosticError
	notes  []Note
}

func NewSink() *Sink {
	return &Sink{}
}

// Append records errors on the sink.
func (s *Sink) Append(errs ...*DiagnosticError) {
	if len(errs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, errs...)
}

// AppendNotes records non-error remarks on the sink.
func (s *Sink) AppendNotes(notes ...Note) {
	if len(notes) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, notes...)
}

// Errors returns a copy of the collected errors in append order.
func (s *Sink) Errors() []*DiagnosticError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*DiagnosticError, len(s.errors))
	copy(out, s.errors)
	return out
}

// Notes returns a copy of the collected notes in append order.
func (s *Sink) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// HasErrors reports whether any error has been appended.
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors) > 0
}
