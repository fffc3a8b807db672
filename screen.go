package framekit

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Screen manages the terminal display with double buffering and diff-based
// updates. Components render into the back buffer; Flush writes only the
// cells that differ from the front buffer.
type Screen struct {
	front  *Buffer
	back   *Buffer
	writer io.Writer
	fd     int

	width  int
	height int

	// terminal state
	prevState *term.State
	inRawMode bool

	// resize handling
	resizeChan chan Size
	sigChan    chan os.Signal

	out ansiWriter

	// protects buffer access during resize
	mu sync.Mutex
}

// NewScreen creates a new screen writing to the given writer.
// Pass nil to use os.Stdout.
func NewScreen(w io.Writer) (*Screen, error) {
	if w == nil {
		w = os.Stdout
	}

	fd := int(os.Stdout.Fd())
	width, height, err := getTerminalSize(fd)
	if err != nil {
		width, height = 80, 24
	}

	s := &Screen{
		front:      NewBuffer(width, height),
		back:       NewBuffer(width, height),
		writer:     w,
		fd:         fd,
		width:      width,
		height:     height,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
	}
	s.out.lastStyle = DefaultStyle()

	return s, nil
}

// getTerminalSize returns the current terminal dimensions.
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Width returns the screen width.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height.
func (s *Screen) Height() int {
	return s.height
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// ResizeChan returns a channel that receives size updates on terminal resize.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// EnterRawMode puts the terminal into raw mode and switches to the alternate
// screen for full-screen operation.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	s.prevState = state
	s.inRawMode = true

	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()

	s.writeString("\x1b[?1049h") // enter alternate screen
	s.writeString("\x1b[2J")     // clear so front buffer matches the screen
	s.writeString("\x1b[H")
	s.writeString("\x1b[?25l") // hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[0m")
	s.writeString("\x1b[?25h")   // show cursor
	s.writeString("\x1b[?1049l") // exit alternate screen

	signal.Stop(s.sigChan)

	if s.prevState != nil {
		if err := term.Restore(s.fd, s.prevState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// handleSignals turns SIGWINCH into resize events on ResizeChan.
func (s *Screen) handleSignals() {
	for range s.sigChan {
		width, height, err := getTerminalSize(s.fd)
		if err != nil {
			continue
		}
		if width != s.width || height != s.height {
			s.mu.Lock()
			s.width = width
			s.height = height
			s.front.Resize(width, height)
			s.back.Resize(width, height)
			// both buffers clear so no stale content survives the resize
			s.front.Clear()
			s.back.Clear()
			s.writeString("\x1b[2J")
			s.mu.Unlock()
			select {
			case s.resizeChan <- Size{Width: width, Height: height}:
			default:
			}
		}
	}
}

// Flush writes the back buffer to the terminal using a per-cell diff against
// the front buffer. Only changed cells are emitted, with cursor positioning
// per run.
func (s *Screen) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.reset()

	changed := false
	cursorX, cursorY := -1, -1

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			backCell := s.back.Get(x, y)
			if backCell == s.front.Get(x, y) {
				continue
			}

			// placeholder cells (second half of wide runes) sync silently
			if backCell.Rune == 0 {
				s.front.Set(x, y, backCell)
				continue
			}

			changed = true
			if cursorX != x || cursorY != y {
				s.out.moveTo(x, y)
			}
			s.out.writeCell(backCell)
			s.front.Set(x, y, backCell)

			cursorX = x + cursorAdvance(backCell.Rune)
			cursorY = y
		}
	}

	if changed {
		s.out.resetStyle()
	}
	if s.out.len() > 0 {
		s.writer.Write(s.out.bytes())
	}
}

// FlushFull does a complete redraw without diffing.
func (s *Screen) FlushFull() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.reset()
	s.out.writeString("\x1b[2J\x1b[H")

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.back.Get(x, y)
			if cell.Rune == 0 {
				cell.Rune = ' '
			}
			s.out.writeCell(cell)
			s.front.Set(x, y, s.back.Get(x, y))
		}
		if y < s.height-1 {
			s.out.writeString("\r\n")
		}
	}

	s.out.resetStyle()
	s.writer.Write(s.out.bytes())
}

// Clear clears the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}

func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}
