package tracker

import "math"

// AnchorFraction places the proximity anchor 35% of the viewport height
// below its top edge.
const AnchorFraction = 0.35

// Rect is the vertical extent of a region in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the document coordinate just past the region.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Region reports the current bounds of a rendered section. ok is false
// while the section has not been rendered.
type Region interface {
	Bounds() (r Rect, ok bool)
}

// RegionFunc adapts a function to the Region interface.
type RegionFunc func() (Rect, bool)

// Bounds calls f.
func (f RegionFunc) Bounds() (Rect, bool) {
	return f()
}

// FixedRegion is a Region with known bounds.
type FixedRegion Rect

// Bounds returns the fixed rect.
func (f FixedRegion) Bounds() (Rect, bool) {
	return Rect(f), true
}

// Viewport describes the visible window onto the document.
type Viewport struct {
	Width   float64
	Height  float64
	ScrollY float64
}

// Anchor returns the document coordinate of the proximity anchor.
func (v Viewport) Anchor() float64 {
	return v.ScrollY + v.Height*AnchorFraction
}

// VisibleFraction returns how much of r lies inside the viewport, in [0, 1].
func VisibleFraction(r Rect, v Viewport) float64 {
	if r.Height <= 0 {
		return 0
	}
	top := math.Max(r.Top, v.ScrollY)
	bottom := math.Min(r.Bottom(), v.ScrollY+v.Height)
	if bottom <= top {
		return 0
	}
	return math.Min(1, (bottom-top)/r.Height)
}

// anchorDistance is the absolute distance between the region's top edge,
// relative to the viewport, and the anchor line.
func anchorDistance(r Rect, v Viewport) float64 {
	return math.Abs((r.Top - v.ScrollY) - v.Height*AnchorFraction)
}
