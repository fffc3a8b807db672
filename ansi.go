package framekit

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// ansiWriter serializes cells into ANSI escape sequences, tracking the last
// emitted style so runs of identically styled cells cost one SGR sequence.
// Screen uses it for the diff flush; the bubbletea adapter uses it to render
// a whole buffer into the view string.
type ansiWriter struct {
	buf       bytes.Buffer
	lastStyle Style
}

func newANSIWriter() *ansiWriter {
	return &ansiWriter{lastStyle: DefaultStyle()}
}

func (w *ansiWriter) reset() {
	w.buf.Reset()
	w.lastStyle = DefaultStyle()
}

func (w *ansiWriter) writeString(s string) {
	w.buf.WriteString(s)
}

// writeCell emits a cell's style (only on change) and rune.
func (w *ansiWriter) writeCell(cell Cell) {
	if !cell.Style.Equal(w.lastStyle) {
		w.writeStyle(cell.Style)
		w.lastStyle = cell.Style
	}
	w.buf.WriteRune(cell.Rune)
}

// moveTo emits absolute cursor positioning (0-indexed coordinates).
func (w *ansiWriter) moveTo(x, y int) {
	w.buf.WriteString("\x1b[")
	w.writeInt(y + 1)
	w.buf.WriteByte(';')
	w.writeInt(x + 1)
	w.buf.WriteByte('H')
}

// resetStyle emits SGR reset and forgets the tracked style.
func (w *ansiWriter) resetStyle() {
	w.buf.WriteString("\x1b[0m")
	w.lastStyle = DefaultStyle()
}

// writeStyle emits a full SGR sequence for the style, starting from reset so
// no attribute leaks from the previous run.
func (w *ansiWriter) writeStyle(style Style) {
	w.buf.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		w.buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		w.buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		w.buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		w.buf.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		w.buf.WriteString(";7")
	}

	w.writeColor(style.FG, true)
	w.writeColor(style.BG, false)

	w.buf.WriteString("m")
}

// writeColor emits the color portion of an SGR sequence.
func (w *ansiWriter) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			w.buf.WriteString(";39")
		} else {
			w.buf.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			base += 60
			w.buf.WriteByte(';')
			w.writeInt(base + int(c.Index-8))
		} else {
			w.buf.WriteByte(';')
			w.writeInt(base + int(c.Index))
		}
	case Color256:
		if fg {
			w.buf.WriteString(";38;5;")
		} else {
			w.buf.WriteString(";48;5;")
		}
		w.writeInt(int(c.Index))
	case ColorRGB:
		if fg {
			w.buf.WriteString(";38;2;")
		} else {
			w.buf.WriteString(";48;2;")
		}
		w.writeInt(int(c.R))
		w.buf.WriteByte(';')
		w.writeInt(int(c.G))
		w.buf.WriteByte(';')
		w.writeInt(int(c.B))
	}
}

// writeInt writes an integer without allocation.
func (w *ansiWriter) writeInt(n int) {
	if n == 0 {
		w.buf.WriteByte('0')
		return
	}
	if n < 0 {
		w.buf.WriteByte('-')
		n = -n
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	w.buf.Write(scratch[i:])
}

func (w *ansiWriter) bytes() []byte {
	return w.buf.Bytes()
}

func (w *ansiWriter) len() int {
	return w.buf.Len()
}

// RenderANSI serializes the buffer as styled lines joined with "\r\n".
// Placeholder cells behind wide runes are skipped so display widths hold.
func (b *Buffer) RenderANSI() string {
	w := newANSIWriter()
	for y := 0; y < b.height; y++ {
		if y > 0 {
			w.resetStyle()
			w.writeString("\r\n")
		}
		for x := 0; x < b.width; x++ {
			cell := b.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			w.writeCell(cell)
		}
	}
	w.resetStyle()
	return w.buf.String()
}

// cursorAdvance returns how far the terminal cursor moves after printing r.
func cursorAdvance(r rune) int {
	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		return 1
	}
	return rw
}
