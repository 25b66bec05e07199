package report

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/waternet/gridgraph"
)

// LabelImage renders lg with one colour per region; unlabelled cells are black.
// Colours depend only on the label number, so the same region number has the
// same colour in every image.
func LabelImage(lg *gridgraph.LabelGrid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, lg.Cols, lg.Rows))
	for r := 0; r < lg.Rows; r++ {
		for c := 0; c < lg.Cols; c++ {
			img.SetNRGBA(c, r, labelColor(lg.At(r, c)))
		}
	}
	return img
}

// ErrEmptyLabels is returned by WriteLabelsPNG for a grid with no rows or no columns.
var ErrEmptyLabels = errors.New("report: label grid has zero size")

// WriteLabelsPNG encodes LabelImage(lg) as PNG.
func WriteLabelsPNG(w io.Writer, lg *gridgraph.LabelGrid) error {
	if lg.Rows == 0 || lg.Cols == 0 {
		return ErrEmptyLabels
	}
	return png.Encode(w, LabelImage(lg))
}

// labelColor spreads hues by the golden angle.
func labelColor(label int) color.NRGBA {
	if label <= 0 {
		return color.NRGBA{A: 255}
	}
	h := math.Mod(float64(label)*137.508, 360)
	r, g, b := hsvToRGB(h, 0.65, 0.95)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return to8(r), to8(g), to8(b)
}
