package render

import "image/color"

// seriesScale returns the vertical extent used to plot the samples. It never
// drops below floor so a flat or empty series still renders sensibly.
func seriesScale(samples []float64, floor float64) float64 {
	scale := floor
	for _, v := range samples {
		if v > scale {
			scale = v
		}
	}
	if scale <= 0 {
		scale = 1
	}
	return scale
}

// visibleSamples returns the trailing samples that fit into w columns.
func visibleSamples(samples []float64, w int) []float64 {
	if len(samples) > w {
		return samples[len(samples)-w:]
	}
	return samples
}

// fillSeriesRGBA rasterises the trailing samples of a series as filled
// columns into a w*h RGBA buffer, newest sample on the right. Negative values
// render as empty columns.
func fillSeriesRGBA(buf []byte, w, h int, samples []float64, scale float64, fg, bg color.Color) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	rF, gF, bF, aF := fg.RGBA()
	rB, gB, bB, aB := bg.RGBA()
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rB >> 8)
		buf[base+1] = uint8(gB >> 8)
		buf[base+2] = uint8(bB >> 8)
		buf[base+3] = uint8(aB >> 8)
	}
	if scale <= 0 {
		return
	}

	visible := visibleSamples(samples, w)
	offset := w - len(visible)
	for i, v := range visible {
		if v <= 0 {
			continue
		}
		height := int(v / scale * float64(h))
		if height > h {
			height = h
		}
		x := offset + i
		for y := h - height; y < h; y++ {
			base := (y*w + x) * 4
			buf[base+0] = uint8(rF >> 8)
			buf[base+1] = uint8(gF >> 8)
			buf[base+2] = uint8(bF >> 8)
			buf[base+3] = uint8(aF >> 8)
		}
	}
}
