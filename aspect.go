package framekit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRatio is returned when an aspect ratio term is zero, negative,
// or not finite.
var ErrInvalidRatio = errors.New("framekit: aspect ratio terms must be finite and positive")

// ErrInvalidAnchor is returned when an anchor is outside the nine defined
// positions.
var ErrInvalidAnchor = errors.New("framekit: invalid anchor")

// AspectRatioFrame keeps a single child box at a fixed width:height ratio
// inside whatever outer size it is granted. The child is always the largest
// ratio-true box that fits; the spare space becomes margins on the sides the
// anchor leaves open (letterboxing above/below, pillarboxing left/right).
//
// Fractional fits round down: the child box is never larger than the exact
// ratio would allow, so it cannot overflow the outer box by a partial cell.
type AspectRatioFrame struct {
	Base

	content *Frame
	host    Host

	ratioW float64
	ratioH float64
	anchor Anchor

	child Rect // last computed child placement, relative to the frame
}

// NewAspectRatioFrame creates an aspect ratio frame with the given
// width:height ratio, anchored center. Ratio terms must be finite and
// positive; anything else is a construction error.
func NewAspectRatioFrame(parent Container, ratioW, ratioH float64) (*AspectRatioFrame, error) {
	if !validRatioTerm(ratioW) || !validRatioTerm(ratioH) {
		return nil, fmt.Errorf("framekit: ratio %g:%g: %w", ratioW, ratioH, ErrInvalidRatio)
	}
	f := &AspectRatioFrame{
		content: NewFrame(nil),
		host:    nopHost{},
		ratioW:  ratioW,
		ratioH:  ratioH,
		anchor:  AnchorCenter,
	}
	f.style = DefaultStyle()
	f.SetMinSize(1, 1)
	if parent != nil {
		parent.Add(f)
	}
	return f, nil
}

func validRatioTerm(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// SetRatio replaces the ratio and re-lays the child out against the current
// outer size.
func (f *AspectRatioFrame) SetRatio(ratioW, ratioH float64) error {
	if !validRatioTerm(ratioW) || !validRatioTerm(ratioH) {
		return fmt.Errorf("framekit: ratio %g:%g: %w", ratioW, ratioH, ErrInvalidRatio)
	}
	f.ratioW = ratioW
	f.ratioH = ratioH
	f.layout()
	return nil
}

// Ratio returns the configured width and height ratio terms.
func (f *AspectRatioFrame) Ratio() (ratioW, ratioH float64) {
	return f.ratioW, f.ratioH
}

// SetAnchor moves the child box to a different corner or edge of the outer
// box and re-lays it out.
func (f *AspectRatioFrame) SetAnchor(a Anchor) error {
	if !a.valid() {
		return fmt.Errorf("framekit: anchor %d: %w", int(a), ErrInvalidAnchor)
	}
	f.anchor = a
	f.layout()
	return nil
}

// Anchor returns the current anchor.
func (f *AspectRatioFrame) Anchor() Anchor {
	return f.anchor
}

// Host attaches a command sink for child placement updates.
func (f *AspectRatioFrame) Host(h Host) *AspectRatioFrame {
	if h == nil {
		h = nopHost{}
	}
	f.host = h
	f.layout()
	return f
}

// Content returns the delegate frame that fills the ratio-true child box.
func (f *AspectRatioFrame) Content() *Frame {
	return f.content
}

// Add adds children to the ratio-true child box.
func (f *AspectRatioFrame) Add(children ...Component) Container {
	f.content.Add(children...)
	return f
}

// Remove removes a child from the child box.
func (f *AspectRatioFrame) Remove(child Component) {
	f.content.Remove(child)
}

// Children returns the child box's children.
func (f *AspectRatioFrame) Children() []Component {
	return f.content.Children()
}

// ChildRect returns the last computed child placement, relative to the
// frame's own origin.
func (f *AspectRatioFrame) ChildRect() Rect {
	return f.child
}

// OnResize handles an outer resize event: the largest ratio-true child box
// is recomputed, anchored, and reported to the host. Repeating the same size
// reproduces the same placement.
func (f *AspectRatioFrame) OnResize(width, height int) {
	f.width = clampMin(width, 0)
	f.height = clampMin(height, 0)
	f.layout()
}

// layout recomputes the child placement from the current outer size.
func (f *AspectRatioFrame) layout() {
	childW, childH := aspectFit(f.width, f.height, f.ratioW, f.ratioH)
	offX, offY := anchorOffsets(f.anchor, f.width, f.height, childW, childH)
	f.child = Rect{X: offX, Y: offY, Width: childW, Height: childH}
	f.content.SetConstraints(childW, childH)
	f.host.PlaceChild(f.child.X, f.child.Y, f.child.Width, f.child.Height)
}

// aspectFit returns the largest width:height-true box that fits in the outer
// box. A degenerate outer box yields a zero box. Fractional results truncate
// toward zero, keeping the box inside the outer bounds.
func aspectFit(outerW, outerH int, ratioW, ratioH float64) (width, height int) {
	if outerW <= 0 || outerH <= 0 {
		return 0, 0
	}
	width = int(float64(outerH) * ratioW / ratioH)
	if width <= outerW {
		return width, outerH
	}
	height = int(float64(outerW) * ratioH / ratioW)
	return outerW, height
}

// SetConstraints implements Component, feeding toolkit resize events into
// OnResize.
func (f *AspectRatioFrame) SetConstraints(width, height int) {
	f.OnResize(width, height)
}

// Render implements Component: the delegate frame draws inside the computed
// child box, leaving the margins untouched.
func (f *AspectRatioFrame) Render(buf *Buffer, x, y int) {
	if f.child.Width <= 0 || f.child.Height <= 0 {
		return
	}
	f.content.Render(buf, x+f.child.X, y+f.child.Y)
}
