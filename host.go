package framekit

// Host receives the geometry commands a frame issues after reconciling an
// event. The built-in render path applies the same geometry directly; a Host
// lets an embedding toolkit (or a test) observe the placement decisions.
type Host interface {
	// PlaceChild positions and sizes the frame's child box.
	PlaceChild(x, y, width, height int)

	// SetScrollbar updates one scrollbar proxy. position and extent are
	// fractions in [0, 1]; extent 1 means the whole content is visible.
	SetScrollbar(axis Axis, position, extent float64)

	// SetVisibleRegion moves the visible window's top-left within the
	// content box.
	SetVisibleRegion(offsetX, offsetY int)
}

// nopHost discards all commands. Used when no host is attached.
type nopHost struct{}

func (nopHost) PlaceChild(x, y, width, height int)             {}
func (nopHost) SetScrollbar(axis Axis, position, extent float64) {}
func (nopHost) SetVisibleRegion(offsetX, offsetY int)          {}
