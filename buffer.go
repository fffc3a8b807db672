package framekit

import "github.com/mattn/go-runewidth"

// Buffer is a 2D grid of cells representing a drawable surface.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set sets the cell at the given coordinates. Out-of-bounds writes are
// dropped rather than panicking; children may legitimately overdraw their
// clip box by a cell during resize storms.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear clears the buffer to empty cells with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes a string at the given coordinates with the given style.
// Wide runes occupy two cells; the second is a zero placeholder that the
// flush path skips. Returns the number of columns consumed.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if w == 2 && b.InBounds(x+1, y) {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// WriteStringClipped writes a string, stopping at maxWidth columns.
func (b *Buffer) WriteStringClipped(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if written+w > maxWidth || !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if w == 2 && b.InBounds(x+1, y) {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical line of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, NewCell(r, style))
	}
}

// Box drawing characters for borders.
const (
	BoxHorizontal  = '─'
	BoxVertical    = '│'
	BoxTopLeft     = '┌'
	BoxTopRight    = '┐'
	BoxBottomLeft  = '└'
	BoxBottomRight = '┘'
)

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// BorderSingle is the standard single-line border.
var BorderSingle = BorderStyle{
	Horizontal:  BoxHorizontal,
	Vertical:    BoxVertical,
	TopLeft:     BoxTopLeft,
	TopRight:    BoxTopRight,
	BottomLeft:  BoxBottomLeft,
	BottomRight: BoxBottomRight,
}

// DrawBorder draws a border around the given rectangle.
func (b *Buffer) DrawBorder(x, y, width, height int, border BorderStyle, style Style) {
	if width < 2 || height < 2 {
		return
	}

	b.Set(x, y, NewCell(border.TopLeft, style))
	b.Set(x+width-1, y, NewCell(border.TopRight, style))
	b.Set(x, y+height-1, NewCell(border.BottomLeft, style))
	b.Set(x+width-1, y+height-1, NewCell(border.BottomRight, style))

	for i := 1; i < width-1; i++ {
		b.Set(x+i, y, NewCell(border.Horizontal, style))
		b.Set(x+i, y+height-1, NewCell(border.Horizontal, style))
	}

	for i := 1; i < height-1; i++ {
		b.Set(x, y+i, NewCell(border.Vertical, style))
		b.Set(x+width-1, y+i, NewCell(border.Vertical, style))
	}
}

// Blit copies a rectangular region from src into this buffer.
// srcX/srcY select the source window; dstX/dstY position it here.
// Reads and writes outside either buffer are clipped.
func (b *Buffer) Blit(src *Buffer, srcX, srcY, dstX, dstY, width, height int) {
	if src == nil {
		return
	}
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			if !src.InBounds(srcX+dx, srcY+dy) {
				continue
			}
			b.Set(dstX+dx, dstY+dy, src.Get(srcX+dx, srcY+dy))
		}
	}
}

// GetLine returns the content of a single line as a string with trailing
// spaces removed.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line []byte
	lastNonSpace := -1
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			continue // placeholder half of a wide rune
		}
		line = append(line, string(r)...)
		if r != ' ' {
			lastNonSpace = len(line)
		}
	}
	if lastNonSpace >= 0 {
		return string(line[:lastNonSpace])
	}
	return ""
}

// String returns the buffer contents as plain text, rows separated by
// newlines. For testing and debugging; styles are ignored.
func (b *Buffer) String() string {
	var result []byte
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				continue
			}
			result = append(result, string(r)...)
		}
		if y < b.height-1 {
			result = append(result, '\n')
		}
	}
	return string(result)
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	minWidth := min(b.width, width)
	minHeight := min(b.height, height)
	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newCells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = newCells
	b.width = width
	b.height = height
}
