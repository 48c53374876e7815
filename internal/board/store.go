package board

import (
	"sync"

	"TouchBoard/internal/geom"
)

// Store holds the ordered collection of finished strokes plus the single
// in-progress point buffer owned by an active draw gesture. Mutations come
// from one gesture at a time; the renderer reads snapshots concurrently, so
// everything is guarded the same way the rest of the shared canvas state is.
type Store struct {
	mu      sync.RWMutex
	strokes []Stroke
	working []geom.Point
	drawing bool
}

func NewStore() *Store {
	return &Store{}
}

// Append adds a finished stroke to the end of the collection.
func (s *Store) Append(st Stroke) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strokes = append(s.strokes, st)
}

// RemoveWhere removes every stroke for which pred holds, preserving the
// order of the remainder. Returns the number removed.
func (s *Store) RemoveWhere(pred func(Stroke) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.strokes[:0]
	for _, st := range s.strokes {
		if !pred(st) {
			kept = append(kept, st)
		}
	}
	removed := len(s.strokes) - len(kept)
	s.strokes = kept
	return removed
}

// Snapshot returns a copy of the current stroke sequence for read-only
// consumption by the renderer or an exporter.
func (s *Store) Snapshot() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// Len returns the number of committed strokes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.strokes)
}

// Replace swaps the whole collection, used by load-from-file.
func (s *Store) Replace(strokes []Stroke) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strokes = make([]Stroke, len(strokes))
	copy(s.strokes, strokes)
}

// BeginStroke clears the working buffer and seeds it with the first point of
// a new draw gesture.
func (s *Store) BeginStroke(p geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = []geom.Point{p}
	s.drawing = true
}

// ExtendStroke appends a point to the working buffer.
func (s *Store) ExtendStroke(p geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		return
	}
	s.working = append(s.working, p)
}

// FinishStroke commits the working buffer as a new stroke with the given
// style and clears it. An empty buffer commits nothing; no zero-length
// stroke ever enters the store.
func (s *Store) FinishStroke(color string, width float64) (Stroke, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawing = false
	if len(s.working) == 0 {
		return Stroke{}, false
	}
	st := NewStroke(s.working, color, width)
	s.strokes = append(s.strokes, st)
	s.working = nil
	return st, true
}

// Working returns a copy of the in-progress buffer and whether a draw
// gesture currently owns it, for live preview rendering.
func (s *Store) Working() ([]geom.Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.drawing {
		return nil, false
	}
	out := make([]geom.Point, len(s.working))
	copy(out, s.working)
	return out, true
}
