// Package field implements ParameterField, a bilinearly-interpolated scalar
// field over a world rectangle, used to make curve-evolution
// parameters (fB, fF, fA, fg) spatially varying.
package field

import (
	"image"
	"math"
)

// Field is a regular W×H grid of reals over a world rectangle
// [minX,maxX]×[minY,maxY] with a default value.
type Field struct {
	w, h                   int
	minX, minY, maxX, maxY float64
	defaultValue           float64
	cells                  []float64
}

// New creates a Field of the given grid resolution over the given world
// rectangle, initialized uniformly to defaultValue.
func New(w, h int, minX, minY, maxX, maxY, defaultValue float64) *Field {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	cells := make([]float64, w*h)
	for i := range cells {
		cells[i] = defaultValue
	}
	return &Field{
		w: w, h: h,
		minX: minX, minY: minY, maxX: maxX, maxY: maxY,
		defaultValue: defaultValue,
		cells:        cells,
	}
}

// Size returns the grid resolution.
func (f *Field) Size() (w, h int) { return f.w, f.h }

// cellExtent returns the world-space size of one grid cell along each axis.
func (f *Field) cellExtent() (cx, cy float64) {
	cx = (f.maxX - f.minX) / float64(f.w-1)
	cy = (f.maxY - f.minY) / float64(f.h-1)
	return
}

// toGrid maps a world coordinate to clamped, continuous grid coordinates.
func (f *Field) toGrid(x, y float64) (fx, fy float64) {
	u := (x - f.minX) / (f.maxX - f.minX)
	v := (y - f.minY) / (f.maxY - f.minY)
	u = clamp01(u)
	v = clamp01(v)
	fx = u * float64(f.w-1)
	fy = v * float64(f.h-1)
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Sample returns the clamped-bilinear interpolation of the field at (x, y)
func (f *Field) Sample(x, y float64) float64 {
	fx, fy := f.toGrid(x, y)

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	if x0 > f.w-2 {
		x0 = f.w - 2
	}
	if y0 > f.h-2 {
		y0 = f.h - 2
	}
	x1, y1 := x0+1, y0+1

	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := f.at(x0, y0)
	v10 := f.at(x1, y0)
	v01 := f.at(x0, y1)
	v11 := f.at(x1, y1)

	a := v00 + (v10-v00)*tx
	b := v01 + (v11-v01)*tx
	return a + (b-a)*ty
}

func (f *Field) at(x, y int) float64 {
	return f.cells[y*f.w+x]
}

// Gradient returns (d/dx, d/dy) via central differences with
// epsilon = half the smaller cell extent in world units.
func (f *Field) Gradient(x, y float64) (gx, gy float64) {
	cx, cy := f.cellExtent()
	eps := cx
	if cy < eps {
		eps = cy
	}
	eps *= 0.5
	if eps <= 0 {
		eps = 1e-6
	}

	gx = (f.Sample(x+eps, y) - f.Sample(x-eps, y)) / (2 * eps)
	gy = (f.Sample(x, y+eps) - f.Sample(x, y-eps)) / (2 * eps)
	return
}

// PaintBrush modifies cells within radius world units of (x, y) using a
// quadratic-falloff weight (1 - d/radius)^2, blending each cell toward
// value by strength*falloff.
func (f *Field) PaintBrush(x, y, radius, value, strength float64) {
	if radius <= 0 {
		return
	}
	cx, cy := f.cellExtent()

	for gy := 0; gy < f.h; gy++ {
		wy := f.minY + float64(gy)*cy
		dy := wy - y
		for gx := 0; gx < f.w; gx++ {
			wx := f.minX + float64(gx)*cx
			dx := wx - x
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= radius {
				continue
			}
			falloff := 1 - d/radius
			falloff *= falloff
			idx := gy*f.w + gx
			f.cells[idx] += (value - f.cells[idx]) * strength * falloff
		}
	}
}

// FillProcedural evaluates f(worldX, worldY) at every grid node.
func (f *Field) FillProcedural(fn func(worldX, worldY float64) float64) {
	cx, cy := f.cellExtent()
	for gy := 0; gy < f.h; gy++ {
		wy := f.minY + float64(gy)*cy
		for gx := 0; gx < f.w; gx++ {
			wx := f.minX + float64(gx)*cx
			f.cells[gy*f.w+gx] = fn(wx, wy)
		}
	}
}

// Channel identifies a color channel extracted by LoadFromImage.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// LoadFromImage extracts a single channel of img into [0,1], resampling
// nearest-neighbor onto the field's grid resolution.
func (f *Field) LoadFromImage(img image.Image, ch Channel) {
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()
	if iw <= 0 || ih <= 0 {
		return
	}

	for gy := 0; gy < f.h; gy++ {
		sy := bounds.Min.Y + gy*ih/f.h
		for gx := 0; gx < f.w; gx++ {
			sx := bounds.Min.X + gx*iw/f.w
			r, g, b, a := img.At(sx, sy).RGBA()
			var v uint32
			switch ch {
			case ChannelRed:
				v = r
			case ChannelGreen:
				v = g
			case ChannelBlue:
				v = b
			case ChannelAlpha:
				v = a
			}
			f.cells[gy*f.w+gx] = float64(v) / float64(0xffff)
		}
	}
}
