package board

import (
	"time"

	"github.com/google/uuid"

	"TouchBoard/internal/geom"
)

// Default style for committed strokes.
const (
	DefaultColor = "black"
	DefaultWidth = 4.0
)

// Stroke is one completed draw gesture: an ordered polyline of canvas-space
// points plus the style it was drawn with. Strokes are immutable once
// committed; the only mutation the store allows is whole-stroke removal.
type Stroke struct {
	ID     string       `json:"id"`
	Points []geom.Point `json:"points"`
	Color  string       `json:"color"`
	Width  float64      `json:"width"`
	Time   time.Time    `json:"time"`
}

// NewStroke copies points into a freshly identified stroke. Callers must not
// pass an empty slice; the store never holds a zero-length stroke.
func NewStroke(points []geom.Point, color string, width float64) Stroke {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	return Stroke{
		ID:     uuid.NewString(),
		Points: pts,
		Color:  color,
		Width:  width,
		Time:   time.Now(),
	}
}

// Intersects reports whether any point of the stroke lies within radius of p,
// using Euclidean distance. The test is deliberately per-point rather than
// per-segment: widely spaced points can slip through, bounded in practice by
// the 2-unit minimum spacing applied at capture time.
func Intersects(s Stroke, p geom.Point, radius float64) bool {
	for _, q := range s.Points {
		if q.Dist(p) <= radius {
			return true
		}
	}
	return false
}
