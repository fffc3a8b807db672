package framekit

// Frame is the toolkit's generic container primitive: a rectangular surface
// that owns a set of children and flows them vertically at their natural
// heights. The three specialty frames (NestedFrame, ScrollFrame,
// AspectRatioFrame) wrap a Frame as their delegate surface rather than
// inheriting from it.
type Frame struct {
	BaseContainer

	gap        int
	border     *BorderStyle
	background *Color

	// onContentResize fires after the child set or flowed content size
	// changes. ScrollFrame subscribes to keep its ContentBox current.
	onContentResize func(width, height int)
}

// NewFrame creates an empty frame. If parent is non-nil the frame is added
// to it immediately.
func NewFrame(parent Container) *Frame {
	f := &Frame{}
	f.style = DefaultStyle()
	if parent != nil {
		parent.Add(f)
	}
	return f
}

// Add adds children to the frame. Returns the frame as a Container.
func (f *Frame) Add(children ...Component) Container {
	for _, child := range children {
		child.SetParent(f)
		f.addChild(child)
	}
	f.notifyContentResize()
	return f
}

// Remove removes a child and fires the content-resize notification.
func (f *Frame) Remove(child Component) {
	f.BaseContainer.Remove(child)
	f.notifyContentResize()
}

// Clear detaches all children.
func (f *Frame) Clear() {
	f.removeAll()
	f.notifyContentResize()
}

// OnContentResize registers a callback fired whenever the frame's flowed
// content size changes. Only one observer is supported; the scroll frame
// owns its content frame exclusively.
func (f *Frame) OnContentResize(fn func(width, height int)) {
	f.onContentResize = fn
}

func (f *Frame) notifyContentResize() {
	if f.onContentResize != nil {
		w, h := f.ContentSize()
		f.onContentResize(w, h)
	}
}

// ContentSize returns the natural flowed size of the children: the widest
// child's minimum width and the sum of minimum heights plus gaps.
func (f *Frame) ContentSize() (width, height int) {
	for i, child := range f.children {
		w, h := child.MinSize()
		if w > width {
			width = w
		}
		height += h
		if i > 0 {
			height += f.gap
		}
	}
	return width, height
}

// MinSize implements Component.
func (f *Frame) MinSize() (int, int) {
	w, h := f.ContentSize()
	if f.border != nil {
		w += 2
		h += 2
	}
	return w, h
}

// SetConstraints implements Component. Children flow vertically at their
// natural heights inside the granted space.
func (f *Frame) SetConstraints(width, height int) {
	f.Base.SetConstraints(width, height)

	innerW := f.width
	if f.border != nil {
		innerW = clampMin(innerW-2, 0)
	}

	for _, child := range f.children {
		_, minH := child.MinSize()
		child.SetConstraints(innerW, minH)
	}
}

// Render implements Component.
func (f *Frame) Render(buf *Buffer, x, y int) {
	if f.background != nil {
		cell := NewCell(' ', DefaultStyle().Background(*f.background))
		buf.FillRect(x, y, f.width, f.height, cell)
	}
	if f.border != nil {
		buf.DrawBorder(x, y, f.width, f.height, *f.border, f.style)
	}

	contentX, contentY := x, y
	maxY := y + f.height
	if f.border != nil {
		contentX++
		contentY++
		maxY--
	}

	rowY := contentY
	for _, child := range f.children {
		_, childH := child.Size()
		if rowY >= maxY {
			break
		}
		child.Render(buf, contentX, rowY)
		rowY += childH + f.gap
	}
}

// --- Fluent API ---

// Gap sets the gap between flowed children.
func (f *Frame) Gap(g int) *Frame {
	f.gap = g
	f.notifyContentResize()
	return f
}

// Border adds a border around the frame.
func (f *Frame) Border(b BorderStyle) *Frame {
	f.border = &b
	return f
}

// Background sets the background color.
func (f *Frame) Background(c Color) *Frame {
	f.background = &c
	return f
}

// Ref stores a reference to this frame.
func (f *Frame) Ref(ref **Frame) *Frame {
	*ref = f
	return f
}
