package spline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// SVG renders the curve as a string of SVG path commands, sampling it at
// the given number of subdivisions and projecting onto the XZ plane (x
// right, z down). It exists for eyeballing combined output, not for
// production rendering.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c *Curve, subdivisions int, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, subdivisions, opts)
	return sb.String()
}

// WriteSVG renders the curve as SVG path commands and writes them to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, c *Curve, subdivisions int, opts SVGOptions) error {
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		return strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for i, p := range SamplePositions(c, subdivisions) {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			writef(" ")
		}
		writef("%s%s,%s", cmd, format(p.X()), format(p.Z()))
	}
	return err
}
