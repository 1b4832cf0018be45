package state

import "math"

// MapPointer converts a screen position into backing-raster coordinates.
// origin is the top-left of the displayed canvas in the same screen units.
func MapPointer(origin, screen Point) Point {
	return Point{
		X: (screen.X - origin.X) * DeviceScale,
		Y: (screen.Y - origin.Y) * DeviceScale,
	}
}

func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// CircleFromDrag returns the circle spanned by a drag: the drag segment is
// the radius, its midpoint the centre.
func CircleFromDrag(start, end Point) (center Point, radius float64) {
	return Midpoint(start, end), Distance(start, end)
}

// IsPointInCircle reports whether p lies on or inside c.
func IsPointInCircle(p Point, c Circle) bool {
	return Distance(p, c.Center()) <= c.Radius
}

// FindHit returns the first circle in list order that contains p. Older
// circles win over newer ones drawn on top of them.
func FindHit(p Point, circles []Circle) (int, bool) {
	for i, c := range circles {
		if IsPointInCircle(p, c) {
			return i, true
		}
	}
	return -1, false
}

// Size is the displayed and backing dimensions of the drawing surface.
type Size struct {
	Width, Height               float64
	BackingWidth, BackingHeight int
}

// SizeFor computes the surface size for a viewport width.
func SizeFor(cfg Config, viewportWidth float64) Size {
	w := viewportWidth - cfg.WidthMargin
	if w < 0 {
		w = 0
	}
	return Size{
		Width:         w,
		Height:        cfg.CanvasHeight,
		BackingWidth:  int(w * DeviceScale),
		BackingHeight: int(cfg.CanvasHeight * DeviceScale),
	}
}
