//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SeriesPainter plots a scalar time series into a single RGBA image.
type SeriesPainter struct {
	w, h  int
	floor float64
	img   *ebiten.Image
	buf   []byte
}

// NewSeriesPainter allocates a painter with w columns and h rows. floor is the
// minimum vertical extent of the plot.
func NewSeriesPainter(w, h int, floor float64) *SeriesPainter {
	sp := &SeriesPainter{w: w, h: h, floor: floor, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit uploads the trailing samples into the painter image and draws it. It
// returns the vertical scale used for the plot.
func (sp *SeriesPainter) Blit(dst *ebiten.Image, samples []float64, fg, bg color.Color, scale int) float64 {
	vscale := seriesScale(visibleSamples(samples, sp.w), sp.floor)
	fillSeriesRGBA(sp.buf, sp.w, sp.h, samples, vscale, fg, bg)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
	return vscale
}

// Size returns the dimensions of the underlying image.
func (sp *SeriesPainter) Size() (int, int) { return sp.w, sp.h }
