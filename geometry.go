package framekit

// Size represents dimensions in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a placement rectangle: position plus size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Axis identifies a scroll direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Viewport is the currently visible region of a container. It is updated
// in place on every resize event and owned exclusively by the widget that
// received the event.
type Viewport struct {
	Width  int
	Height int
}

// Set updates the viewport, clamping negative dimensions to zero. The host
// toolkit shouldn't deliver negative sizes, but clamping here keeps the
// downstream ratio math free of division faults.
func (v *Viewport) Set(width, height int) {
	v.Width = clampMin(width, 0)
	v.Height = clampMin(height, 0)
}

// ContentBox is the full, possibly-larger-than-viewport size of scrollable
// content, plus the top-left offset of the visible window within it.
type ContentBox struct {
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

// SetSize updates the content dimensions, clamping negatives to zero.
// Offsets are not adjusted here; callers re-clamp against the viewport.
func (c *ContentBox) SetSize(width, height int) {
	c.Width = clampMin(width, 0)
	c.Height = clampMin(height, 0)
}

// ClampOffsets forces both offsets into [0, max(0, content-viewport)] so the
// visible window never shows area outside the content box.
func (c *ContentBox) ClampOffsets(vp Viewport) {
	c.OffsetX = clampOffset(c.OffsetX, c.Width, vp.Width)
	c.OffsetY = clampOffset(c.OffsetY, c.Height, vp.Height)
}

// MaxOffset returns the largest valid offset for the given axis.
func (c *ContentBox) MaxOffset(axis Axis, vp Viewport) int {
	if axis == Horizontal {
		return clampMin(c.Width-vp.Width, 0)
	}
	return clampMin(c.Height-vp.Height, 0)
}

// clampOffset clamps an offset into the valid range for one axis.
func clampOffset(offset, content, viewport int) int {
	maxOff := content - viewport
	if maxOff < 0 {
		maxOff = 0
	}
	if offset > maxOff {
		offset = maxOff
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// Anchor defines where a shrunk child box sits within its parent.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorN
	AnchorNE
	AnchorE
	AnchorSE
	AnchorS
	AnchorSW
	AnchorW
	AnchorNW
)

var anchorNames = map[Anchor]string{
	AnchorCenter: "center",
	AnchorN:      "n",
	AnchorNE:     "ne",
	AnchorE:      "e",
	AnchorSE:     "se",
	AnchorS:      "s",
	AnchorSW:     "sw",
	AnchorW:      "w",
	AnchorNW:     "nw",
}

// String returns the anchor name.
func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return "invalid"
}

// valid reports whether the anchor is one of the nine defined positions.
func (a Anchor) valid() bool {
	_, ok := anchorNames[a]
	return ok
}

// anchorOffsets returns the x/y margins for placing a child of the given
// size inside a parent, honoring the anchor. Centered margins use integer
// halving, so the leading edge gets the floor and the trailing edge the
// remainder.
func anchorOffsets(a Anchor, parentW, parentH, childW, childH int) (x, y int) {
	spareW := clampMin(parentW-childW, 0)
	spareH := clampMin(parentH-childH, 0)

	switch a {
	case AnchorNW:
		return 0, 0
	case AnchorN:
		return spareW / 2, 0
	case AnchorNE:
		return spareW, 0
	case AnchorE:
		return spareW, spareH / 2
	case AnchorSE:
		return spareW, spareH
	case AnchorS:
		return spareW / 2, spareH
	case AnchorSW:
		return 0, spareH
	case AnchorW:
		return 0, spareH / 2
	default: // AnchorCenter
		return spareW / 2, spareH / 2
	}
}
