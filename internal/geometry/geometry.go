// Package geometry holds the pixel types shared by the overlay, the
// synchronizer and the GPU surface, plus the policy that derives overlay
// placement from the host window size.
//
// All coordinates are physical pixels. There is deliberately no logical
// (DPI-scaled) unit anywhere in these types; the host toolkit is expected to
// deliver physical units and everything downstream stays in them.
package geometry

// Point is a position in physical pixels. Depending on context it is either
// host-local (embedded overlays) or screen-space (owned overlays).
type Point struct {
	X int32
	Y int32
}

// Size is an extent in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero. A zero size must never be
// committed to a presentable surface.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Band describes the overlay as a horizontally centered strip near the top of
// the host window, scaling proportionally with it.
type Band struct {
	// Fraction of the host width/height the overlay occupies.
	WidthFraction  float64
	HeightFraction float64

	// Distance of the overlay's top edge from the host's local top edge.
	TopOffset int32
}

// DefaultBand returns the stock policy: a 30%-wide, 10%-tall strip centered
// horizontally, 100 pixels down from the top.
func DefaultBand() Band {
	return Band{
		WidthFraction:  0.3,
		HeightFraction: 0.1,
		TopOffset:      100,
	}
}

// Layout maps a host size to the overlay origin (host-local) and size. Pure;
// the same host size always yields the same geometry.
func (b Band) Layout(host Size) (Point, Size) {
	overlayWidth := float64(host.Width) * b.WidthFraction
	overlayHeight := float64(host.Height) * b.HeightFraction

	origin := Point{
		X: int32((float64(host.Width) - overlayWidth) / 2),
		Y: b.TopOffset,
	}
	size := Size{
		Width:  uint32(overlayWidth),
		Height: uint32(overlayHeight),
	}

	return origin, size
}
