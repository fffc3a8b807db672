package framekit

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		// All cells should be empty
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				c := buf.Get(x, y)
				if c.Rune != ' ' {
					t.Errorf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("NegativeDimensions", func(t *testing.T) {
		buf := NewBuffer(-5, -3)
		if buf.Width() != 0 || buf.Height() != 0 {
			t.Errorf("expected 0x0, got %dx%d", buf.Width(), buf.Height())
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			got := buf.InBounds(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		got := buf.Get(5, 5)

		if got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// Out of bounds should return empty cell, and writes are dropped
		oob := buf.Get(-1, -1)
		if oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
		buf.Set(100, 100, cell) // must not panic
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(20, 5)
		buf.WriteString(2, 1, "hello", DefaultStyle())

		if got := buf.GetLine(1); got != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("WriteStringWideRunes", func(t *testing.T) {
		buf := NewBuffer(20, 2)
		written := buf.WriteString(0, 0, "日本", DefaultStyle())

		if written != 4 {
			t.Errorf("written = %d, want 4", written)
		}
		if buf.Get(0, 0).Rune != '日' {
			t.Errorf("got %q at 0, want 日", buf.Get(0, 0).Rune)
		}
		// second half of a wide rune is a placeholder cell
		if buf.Get(1, 0).Rune != 0 {
			t.Errorf("expected placeholder at 1, got %q", buf.Get(1, 0).Rune)
		}
		if buf.Get(2, 0).Rune != '本' {
			t.Errorf("got %q at 2, want 本", buf.Get(2, 0).Rune)
		}
	})

	t.Run("WriteStringClipped", func(t *testing.T) {
		buf := NewBuffer(20, 2)
		buf.WriteStringClipped(0, 0, "hello world", DefaultStyle(), 5)

		if got := buf.GetLine(0); got != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('#', DefaultStyle())
		buf.FillRect(2, 2, 3, 3, cell)

		if buf.Get(2, 2).Rune != '#' || buf.Get(4, 4).Rune != '#' {
			t.Error("fill region not covered")
		}
		if buf.Get(1, 2).Rune == '#' || buf.Get(5, 2).Rune == '#' {
			t.Error("fill leaked outside region")
		}
	})

	t.Run("DrawBorder", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		buf.DrawBorder(0, 0, 10, 5, BorderSingle, DefaultStyle())

		corners := []struct {
			x, y int
			want rune
		}{
			{0, 0, BoxTopLeft},
			{9, 0, BoxTopRight},
			{0, 4, BoxBottomLeft},
			{9, 4, BoxBottomRight},
		}
		for _, c := range corners {
			if got := buf.Get(c.x, c.y).Rune; got != c.want {
				t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
			}
		}
		if buf.Get(5, 0).Rune != BoxHorizontal {
			t.Error("top edge not drawn")
		}
		if buf.Get(0, 2).Rune != BoxVertical {
			t.Error("left edge not drawn")
		}
	})

	t.Run("Blit", func(t *testing.T) {
		src := NewBuffer(10, 10)
		src.WriteString(0, 0, "0123456789", DefaultStyle())
		src.WriteString(0, 1, "abcdefghij", DefaultStyle())

		dst := NewBuffer(5, 5)
		dst.Blit(src, 2, 0, 0, 0, 5, 2)

		if got := dst.GetLine(0); got != "23456" {
			t.Errorf("line 0: got %q, want %q", got, "23456")
		}
		if got := dst.GetLine(1); got != "cdefg" {
			t.Errorf("line 1: got %q, want %q", got, "cdefg")
		}
	})

	t.Run("BlitClipsOutOfRange", func(t *testing.T) {
		src := NewBuffer(3, 3)
		src.Fill(NewCell('x', DefaultStyle()))

		dst := NewBuffer(5, 5)
		// window extends past the source on both axes
		dst.Blit(src, 1, 1, 0, 0, 5, 5)

		if got := dst.GetLine(0); got != "xx" {
			t.Errorf("got %q, want %q", got, "xx")
		}
		if got := dst.GetLine(3); got != "" {
			t.Errorf("row 3 should be empty, got %q", got)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(10, 3)
		buf.WriteString(0, 0, "keep this", DefaultStyle())

		buf.Resize(4, 2)
		if buf.Width() != 4 || buf.Height() != 2 {
			t.Errorf("got %dx%d, want 4x2", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "keep" {
			t.Errorf("got %q, want %q", got, "keep")
		}

		buf.Resize(10, 3)
		if got := buf.GetLine(0); got != "keep" {
			t.Errorf("after grow: got %q, want %q", got, "keep")
		}
	})
}
