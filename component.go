package framekit

// Component is the interface all widgets implement.
type Component interface {
	// SetConstraints is the resize event: the parent grants this much
	// space and the component reconciles its geometry against it.
	SetConstraints(width, height int)

	// MinSize returns the minimum size the component needs.
	MinSize() (width, height int)

	// Size returns the actual size after layout.
	Size() (width, height int)

	// Hierarchy
	Parent() Container
	SetParent(Container)

	// Render draws the component into buf at the given origin.
	Render(buf *Buffer, x, y int)
}

// Container is a component that can hold children.
type Container interface {
	Component
	Children() []Component
	Add(children ...Component) Container
	Remove(child Component)
}

// Base provides common geometry state for components.
// Embed this in widget structs.
type Base struct {
	parent        Container
	style         Style
	width, height int // actual size
	minW, minH    int // minimum size
}

// Parent returns the parent container.
func (b *Base) Parent() Container {
	return b.parent
}

// SetParent sets the parent container.
func (b *Base) SetParent(p Container) {
	b.parent = p
}

// SetConstraints accepts the granted space as the actual size.
// Widgets with real layout logic override this.
func (b *Base) SetConstraints(width, height int) {
	b.width = clampMin(width, 0)
	b.height = clampMin(height, 0)
}

// MinSize returns the minimum size needed.
func (b *Base) MinSize() (int, int) {
	return b.minW, b.minH
}

// Size returns the actual size.
func (b *Base) Size() (int, int) {
	return b.width, b.height
}

// SetMinSize sets the minimum size.
func (b *Base) SetMinSize(w, h int) {
	b.minW = w
	b.minH = h
}

// Style returns the component's style.
func (b *Base) Style() Style {
	return b.style
}

// SetStyle sets the component's style.
func (b *Base) SetStyle(s Style) {
	b.style = s
}

// BaseContainer provides child management for containers.
type BaseContainer struct {
	Base
	children []Component
}

// Children returns the child components.
func (c *BaseContainer) Children() []Component {
	return c.children
}

// addChild appends a single child. Concrete container types wrap this with
// their own Add so the parent pointer lands on the outer type.
func (c *BaseContainer) addChild(child Component) {
	c.children = append(c.children, child)
}

// Remove removes a child from the container.
func (c *BaseContainer) Remove(child Component) {
	for i, ch := range c.children {
		if ch == child {
			child.SetParent(nil)
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// removeAll detaches every child.
func (c *BaseContainer) removeAll() {
	for _, child := range c.children {
		child.SetParent(nil)
	}
	c.children = c.children[:0]
}
