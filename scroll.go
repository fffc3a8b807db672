package framekit

// ScrollbarPolicy controls when a scrollbar is shown.
type ScrollbarPolicy int

const (
	// ScrollbarAuto shows the bar only while content exceeds the viewport.
	ScrollbarAuto ScrollbarPolicy = iota
	// ScrollbarAlways keeps the bar visible even at full extent.
	ScrollbarAlways
	// ScrollbarNever suppresses the bar; scrolling still works.
	ScrollbarNever
)

// Scrollbar is the proxy state for one scrollbar: the thumb's position and
// extent as fractions of the track, plus visibility under the axis policy.
type Scrollbar struct {
	Axis     Axis
	Position float64 // offset / (content - viewport), 0 when content fits
	Extent   float64 // viewport / content, clamped to 1
	Visible  bool

	policy ScrollbarPolicy
}

// ScrollFrame maintains a fixed-size visible viewport over a content area
// that can exceed it. It wraps a delegate content frame; children are added
// to that frame and the scroll frame reconciles offsets and scrollbar thumbs
// whenever the viewport resizes, the user scrolls, or the content grows or
// shrinks.
type ScrollFrame struct {
	Base

	content *Frame
	host    Host

	viewport Viewport
	box      ContentBox
	hbar     Scrollbar
	vbar     Scrollbar

	// explicit content size set by ContentSize; when zero the frame
	// follows the delegate's flowed size
	fixedContent Size

	maxW, maxH int // viewport caps (0 = none)

	cache *Buffer // offscreen content surface, reused across renders
}

// NewScrollFrame creates a scroll frame. If parent is non-nil the frame is
// added to it. Children go to the delegate content frame via Add.
func NewScrollFrame(parent Container) *ScrollFrame {
	s := &ScrollFrame{
		content: NewFrame(nil),
		host:    nopHost{},
	}
	s.style = DefaultStyle()
	s.hbar = Scrollbar{Axis: Horizontal, Extent: 1}
	s.vbar = Scrollbar{Axis: Vertical, Extent: 1}
	s.SetMinSize(2, 2)
	s.content.OnContentResize(func(w, h int) {
		if s.fixedContent == (Size{}) {
			s.OnContentResize(w, h)
		}
	})
	if parent != nil {
		parent.Add(s)
	}
	return s
}

// ContentSize fixes the content box to an explicit size instead of tracking
// the delegate's flowed children. Passing (0, 0) returns to tracking.
func (s *ScrollFrame) ContentSize(width, height int) *ScrollFrame {
	s.fixedContent = Size{Width: width, Height: height}
	if s.fixedContent == (Size{}) {
		w, h := s.content.ContentSize()
		s.OnContentResize(w, h)
	} else {
		s.OnContentResize(width, height)
	}
	return s
}

// Policy sets the scrollbar policy for one axis.
func (s *ScrollFrame) Policy(axis Axis, p ScrollbarPolicy) *ScrollFrame {
	if axis == Horizontal {
		s.hbar.policy = p
	} else {
		s.vbar.policy = p
	}
	s.reconcile()
	return s
}

// MaxSize caps the viewport the frame will accept from its parent,
// mirroring a fixed-size scroll window inside a larger layout. 0 = no cap.
func (s *ScrollFrame) MaxSize(width, height int) *ScrollFrame {
	s.maxW = width
	s.maxH = height
	return s
}

// Host attaches a command sink for placement/scrollbar updates.
func (s *ScrollFrame) Host(h Host) *ScrollFrame {
	if h == nil {
		h = nopHost{}
	}
	s.host = h
	s.reconcile()
	return s
}

// Content returns the delegate frame holding the scrollable children.
func (s *ScrollFrame) Content() *Frame {
	return s.content
}

// Add adds children to the scrollable content.
func (s *ScrollFrame) Add(children ...Component) Container {
	s.content.Add(children...)
	return s
}

// Remove removes a child from the scrollable content.
func (s *ScrollFrame) Remove(child Component) {
	s.content.Remove(child)
}

// Children returns the scrollable children.
func (s *ScrollFrame) Children() []Component {
	return s.content.Children()
}

// Offsets returns the top-left of the visible window within the content.
func (s *ScrollFrame) Offsets() (x, y int) {
	return s.box.OffsetX, s.box.OffsetY
}

// ViewportSize returns the current viewport dimensions.
func (s *ScrollFrame) ViewportSize() Size {
	return Size{Width: s.viewport.Width, Height: s.viewport.Height}
}

// ContentBoxSize returns the current content dimensions.
func (s *ScrollFrame) ContentBoxSize() Size {
	return Size{Width: s.box.Width, Height: s.box.Height}
}

// HScrollbar returns the horizontal scrollbar proxy.
func (s *ScrollFrame) HScrollbar() Scrollbar {
	return s.hbar
}

// VScrollbar returns the vertical scrollbar proxy.
func (s *ScrollFrame) VScrollbar() Scrollbar {
	return s.vbar
}

// OnResize handles a viewport resize event: the viewport takes the new
// size, offsets are re-clamped so the visible window stays inside the
// content, and both thumbs are recomputed.
func (s *ScrollFrame) OnResize(width, height int) {
	s.viewport.Set(width, height)
	s.reconcile()
}

// OnScroll handles a scroll event: deltas are added to the offsets and
// clamped into the valid range.
func (s *ScrollFrame) OnScroll(deltaX, deltaY int) {
	s.box.OffsetX += deltaX
	s.box.OffsetY += deltaY
	s.reconcile()
}

// OnContentResize handles the content growing or shrinking, e.g. when
// children are added or removed.
func (s *ScrollFrame) OnContentResize(width, height int) {
	s.box.SetSize(width, height)
	s.reconcile()
}

// reconcile restores the scroll invariants after any event: offsets within
// [0, max(0, content-viewport)], thumb extent viewport/content clamped to 1,
// thumb position offset/(content-viewport). It then reports the resulting
// geometry to the host. Reconciliation is deterministic and idempotent, so
// event storms need no coalescing.
func (s *ScrollFrame) reconcile() {
	s.box.ClampOffsets(s.viewport)

	reconcileBar(&s.hbar, s.box.OffsetX, s.box.Width, s.viewport.Width)
	reconcileBar(&s.vbar, s.box.OffsetY, s.box.Height, s.viewport.Height)

	s.host.SetVisibleRegion(s.box.OffsetX, s.box.OffsetY)
	s.host.SetScrollbar(Horizontal, s.hbar.Position, s.hbar.Extent)
	s.host.SetScrollbar(Vertical, s.vbar.Position, s.vbar.Extent)
}

// reconcileBar updates one scrollbar proxy from the axis geometry.
func reconcileBar(bar *Scrollbar, offset, content, viewport int) {
	if content <= 0 || content <= viewport {
		// content fits: full extent, pinned thumb, axis disabled
		bar.Extent = 1
		bar.Position = 0
	} else {
		bar.Extent = float64(viewport) / float64(content)
		bar.Position = float64(offset) / float64(content-viewport)
	}

	switch bar.policy {
	case ScrollbarNever:
		bar.Visible = false
	case ScrollbarAlways:
		bar.Visible = true
	default:
		bar.Visible = bar.Extent < 1
	}
}

// SetConstraints implements Component, feeding toolkit resize events into
// OnResize. The granted size is capped by MaxSize.
func (s *ScrollFrame) SetConstraints(width, height int) {
	if s.maxW > 0 && width > s.maxW {
		width = s.maxW
	}
	if s.maxH > 0 && height > s.maxH {
		height = s.maxH
	}
	s.Base.SetConstraints(width, height)
	s.OnResize(s.width, s.height)
}

// Render implements Component: the children are rendered into an offscreen
// content surface, the visible window is blitted into place, and visible
// scrollbars are overlaid on the trailing column and row.
func (s *ScrollFrame) Render(buf *Buffer, x, y int) {
	if s.width <= 0 || s.height <= 0 {
		return
	}

	cw := clampMin(s.box.Width, s.viewport.Width)
	ch := clampMin(s.box.Height, s.viewport.Height)
	if cw > 0 && ch > 0 {
		if s.cache == nil || s.cache.Width() != cw || s.cache.Height() != ch {
			s.cache = NewBuffer(cw, ch)
		} else {
			s.cache.Clear()
		}
		s.content.SetConstraints(cw, ch)
		s.content.Render(s.cache, 0, 0)
		buf.Blit(s.cache, s.box.OffsetX, s.box.OffsetY, x, y, s.viewport.Width, s.viewport.Height)
	}

	if s.vbar.Visible {
		s.renderVBar(buf, x, y)
	}
	if s.hbar.Visible {
		s.renderHBar(buf, x, y)
	}
}

// renderVBar draws the vertical track and thumb on the trailing column.
func (s *ScrollFrame) renderVBar(buf *Buffer, x, y int) {
	track := s.height
	if track < 1 {
		return
	}
	barX := x + s.width - 1
	thumbSize := thumbCells(s.vbar.Extent, track)
	thumbPos := thumbOffset(s.vbar.Position, track, thumbSize)

	trackStyle := DefaultStyle().Foreground(BrightBlack)
	thumbStyle := DefaultStyle().Foreground(White)
	buf.VLine(barX, y, track, '│', trackStyle)
	buf.VLine(barX, y+thumbPos, thumbSize, '┃', thumbStyle)
}

// renderHBar draws the horizontal track and thumb on the trailing row.
func (s *ScrollFrame) renderHBar(buf *Buffer, x, y int) {
	track := s.width
	if s.vbar.Visible {
		track-- // leave the corner to the vertical bar
	}
	if track < 1 {
		return
	}
	barY := y + s.height - 1
	thumbSize := thumbCells(s.hbar.Extent, track)
	thumbPos := thumbOffset(s.hbar.Position, track, thumbSize)

	trackStyle := DefaultStyle().Foreground(BrightBlack)
	thumbStyle := DefaultStyle().Foreground(White)
	buf.HLine(x, barY, track, '─', trackStyle)
	buf.HLine(x+thumbPos, barY, thumbSize, '━', thumbStyle)
}

// thumbCells converts a thumb extent fraction into track cells (at least 1).
func thumbCells(extent float64, track int) int {
	cells := int(extent * float64(track))
	if cells < 1 {
		cells = 1
	}
	if cells > track {
		cells = track
	}
	return cells
}

// thumbOffset converts a thumb position fraction into a track offset.
func thumbOffset(position float64, track, thumbSize int) int {
	span := track - thumbSize
	if span <= 0 {
		return 0
	}
	off := int(position * float64(span))
	if off < 0 {
		off = 0
	}
	if off > span {
		off = span
	}
	return off
}
