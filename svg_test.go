package spline

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSVG(t *testing.T) {
	c := lineCurve(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{8, 0, 4})
	got := SVG(c, 4, SVGOptions{MaxPrecision: 3})
	diff(t, "M0,0 L2,1 L4,2 L6,3", got)
}

func TestSVGPrecision(t *testing.T) {
	c := lineCurve(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
	got := SVG(c, 3, SVGOptions{MaxPrecision: 2})
	diff(t, "M0,0 L0.33,0 L0.67,0", got)
}

func TestSVGEmpty(t *testing.T) {
	var c Curve
	diff(t, "M0,0", SVG(&c, 1, SVGOptions{}))
	diff(t, "", SVG(&c, 0, SVGOptions{}))
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteSVGError(t *testing.T) {
	c := lineCurve(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{8, 0, 4})
	wantErr := errors.New("broken pipe")
	if err := WriteSVG(failWriter{wantErr}, c, 4, SVGOptions{}); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want the writer's error", err)
	}
}
