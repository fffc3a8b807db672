package framekit

import "github.com/mattn/go-runewidth"

// Label is a single-line text leaf. It is the smallest useful child for
// exercising the container frames and the demo layouts.
type Label struct {
	Base
	text string
}

// NewLabel creates a label. If parent is non-nil the label is added to it.
func NewLabel(parent Container, text string) *Label {
	l := &Label{text: text}
	l.style = DefaultStyle()
	l.SetMinSize(runewidth.StringWidth(text), 1)
	if parent != nil {
		parent.Add(l)
	}
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text and updates the minimum size.
func (l *Label) SetText(text string) *Label {
	l.text = text
	l.SetMinSize(runewidth.StringWidth(text), 1)
	return l
}

// Color sets the foreground color.
func (l *Label) Color(c Color) *Label {
	l.style.FG = c
	return l
}

// Render implements Component.
func (l *Label) Render(buf *Buffer, x, y int) {
	if l.height < 1 {
		return
	}
	width := l.width
	if width <= 0 {
		width = l.minW
	}
	buf.WriteStringClipped(x, y, l.text, l.style, width)
}
