package framekit

import (
	"strings"
	"testing"
)

func TestANSIWriter(t *testing.T) {
	t.Run("style change emits one sequence per run", func(t *testing.T) {
		w := newANSIWriter()
		red := DefaultStyle().Foreground(Red)

		w.writeCell(NewCell('a', red))
		w.writeCell(NewCell('b', red))
		w.writeCell(NewCell('c', DefaultStyle()))

		out := string(w.bytes())
		if got := strings.Count(out, "\x1b[0"); got != 2 {
			t.Errorf("SGR sequences = %d, want 2 in %q", got, out)
		}
		if !strings.Contains(out, ";31") {
			t.Errorf("missing red foreground in %q", out)
		}
	})

	t.Run("color encodings", func(t *testing.T) {
		tests := []struct {
			name  string
			color Color
			fg    bool
			want  string
		}{
			{"default fg", DefaultColor(), true, ";39"},
			{"default bg", DefaultColor(), false, ";49"},
			{"basic fg", Red, true, ";31"},
			{"basic bg", Blue, false, ";44"},
			{"bright fg", BrightGreen, true, ";92"},
			{"bright bg", BrightWhite, false, ";107"},
			{"palette fg", PaletteColor(208), true, ";38;5;208"},
			{"rgb bg", RGB(12, 34, 56), false, ";48;2;12;34;56"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := newANSIWriter()
				w.writeColor(tt.color, tt.fg)
				if got := string(w.bytes()); got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
			})
		}
	})

	t.Run("attributes", func(t *testing.T) {
		w := newANSIWriter()
		w.writeStyle(DefaultStyle().Bold().Inverse())
		out := string(w.bytes())
		if !strings.Contains(out, ";1") || !strings.Contains(out, ";7") {
			t.Errorf("missing attributes in %q", out)
		}
	})

	t.Run("moveTo is one-indexed", func(t *testing.T) {
		w := newANSIWriter()
		w.moveTo(4, 9)
		if got := string(w.bytes()); got != "\x1b[10;5H" {
			t.Errorf("got %q, want %q", got, "\x1b[10;5H")
		}
	})
}

func TestBufferRenderANSI(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.WriteString(0, 0, "ab", DefaultStyle().Foreground(Red))
	buf.WriteString(0, 1, "cd", DefaultStyle())

	out := buf.RenderANSI()
	if !strings.Contains(out, "ab") {
		t.Errorf("missing first row in %q", out)
	}
	if !strings.Contains(out, "\r\n") {
		t.Errorf("rows should join with CRLF in %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("output should end with style reset, got %q", out)
	}

	t.Run("skips wide rune placeholders", func(t *testing.T) {
		wide := NewBuffer(4, 1)
		wide.WriteString(0, 0, "日", DefaultStyle())
		out := wide.RenderANSI()
		if !strings.Contains(out, "日") {
			t.Errorf("missing wide rune in %q", out)
		}
		if strings.ContainsRune(out, 0) {
			t.Errorf("placeholder cell leaked into %q", out)
		}
	})
}
