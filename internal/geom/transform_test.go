package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCanvasRemovesPanAndZoom(t *testing.T) {
	tr := NewTransform()
	tr.ApplyZoom(2.0)
	tr.ApplyPan(Pt(10, 20))

	c := tr.ToCanvas(Pt(30, 40))
	assert.InDelta(t, 10.0, c.X, 1e-9)
	assert.InDelta(t, 10.0, c.Y, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	states := []struct {
		zoom float64
		pan  Point
	}{
		{1.0, Pt(0, 0)},
		{2.5, Pt(100, -30)},
		{0.4, Pt(-7.25, 1000)},
		{9.9, Pt(0.001, -0.001)},
	}
	points := []Point{Pt(0, 0), Pt(100, 100), Pt(-52.5, 17.75), Pt(1e6, -1e6)}

	for _, st := range states {
		tr := NewTransform()
		tr.ApplyZoom(st.zoom)
		tr.ApplyPan(st.pan)
		for _, p := range points {
			got := tr.ToCanvas(tr.ToDevice(p))
			assert.InDelta(t, p.X, got.X, 1e-6)
			assert.InDelta(t, p.Y, got.Y, 1e-6)
		}
	}
}

func TestZoomClamps(t *testing.T) {
	tr := NewTransform()

	tr.ApplyZoom(1e9)
	assert.Equal(t, MaxScale, tr.Scale())

	// clamp is idempotent, further zoom-in stays at the bound
	tr.ApplyZoom(5.0)
	assert.Equal(t, MaxScale, tr.Scale())

	tr.ApplyZoom(1e-12)
	assert.Equal(t, MinScale, tr.Scale())
	tr.ApplyZoom(0.5)
	assert.Equal(t, MinScale, tr.Scale())
}

func TestScaleStaysInBoundsUnderRandomishSequence(t *testing.T) {
	tr := NewTransform()
	factors := []float64{3, 3, 3, 0.01, 0.5, 100, 0.2, 0.2, 0.2, 7, 7}
	for _, f := range factors {
		tr.ApplyZoom(f)
		s := tr.Scale()
		assert.GreaterOrEqual(t, s, MinScale)
		assert.LessOrEqual(t, s, MaxScale)
	}
}

func TestResetRestoresIdentity(t *testing.T) {
	tr := NewTransform()
	tr.ApplyZoom(3.0)
	tr.ApplyPan(Pt(40, -20))

	tr.Reset()
	assert.Equal(t, 1.0, tr.Scale())
	assert.Equal(t, Pt(0, 0), tr.Offset())
}

func TestPanAccumulatesUnclamped(t *testing.T) {
	tr := NewTransform()
	tr.ApplyPan(Pt(1e7, -1e7))
	tr.ApplyPan(Pt(5, 5))
	assert.Equal(t, Pt(1e7+5, -1e7+5), tr.Offset())
}
