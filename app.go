package framekit

import (
	"os"
	"sync"
)

// Key is a decoded input event. Name is "q", "up", "ctrl+c" and so on;
// printable keys also carry the rune.
type Key struct {
	Name string
	Rune rune
}

// App runs a component tree full-screen: raw mode, resize dispatch, key
// dispatch, and diff-flushed rendering.
type App struct {
	screen *Screen
	root   Component

	handlers map[string]func(Key)

	running    bool
	renderMu   sync.Mutex
	renderChan chan struct{}
	keyChan    chan Key
	quitChan   chan struct{}
}

// NewApp creates an application around a root component.
func NewApp(root Component) (*App, error) {
	screen, err := NewScreen(nil)
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:     screen,
		root:       root,
		handlers:   make(map[string]func(Key)),
		renderChan: make(chan struct{}, 1),
		keyChan:    make(chan Key, 8),
		quitChan:   make(chan struct{}),
	}

	// default quit bindings, replaceable via Handle
	a.Handle("q", func(Key) { a.Stop() })
	a.Handle("ctrl+c", func(Key) { a.Stop() })

	return a, nil
}

// Screen returns the screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Size returns the current screen size.
func (a *App) Size() Size {
	return a.screen.Size()
}

// Handle registers a key binding by name: single printable characters
// ("j", "q"), "up"/"down"/"left"/"right", or "ctrl+c".
func (a *App) Handle(name string, handler func(Key)) *App {
	a.handlers[name] = handler
	return a
}

// RequestRender marks that a render is needed. Safe from any goroutine.
func (a *App) RequestRender() {
	select {
	case a.renderChan <- struct{}{}:
	default:
	}
}

// render lays out the root against the screen size and flushes the diff.
func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	size := a.screen.Size()
	a.screen.Clear()
	a.root.SetConstraints(size.Width, size.Height)
	a.root.Render(a.screen.Buffer(), 0, 0)
	a.screen.Flush()
}

// Run starts the application. Blocks until Stop is called.
func (a *App) Run() error {
	a.running = true

	if err := a.screen.EnterRawMode(); err != nil {
		return err
	}
	defer a.screen.ExitRawMode()

	go a.readKeys()
	a.render()

	for {
		select {
		case <-a.quitChan:
			return nil
		case key := <-a.keyChan:
			if handler, ok := a.handlers[key.Name]; ok {
				handler(key)
			}
			if !a.running {
				return nil
			}
			a.render()
		case <-a.renderChan:
			a.render()
		case <-a.screen.ResizeChan():
			a.render()
		}
	}
}

// Stop signals the application to stop.
func (a *App) Stop() {
	if !a.running {
		return
	}
	a.running = false
	close(a.quitChan)
}

// readKeys decodes stdin into key events. Covers printable keys, ctrl+c,
// and the CSI arrow sequences; everything else is dropped.
func (a *App) readKeys() {
	var buf [16]byte
	for {
		n, err := os.Stdin.Read(buf[:])
		if err != nil {
			return
		}
		for _, key := range decodeKeys(buf[:n]) {
			select {
			case a.keyChan <- key:
			case <-a.quitChan:
				return
			}
		}
	}
}

// decodeKeys parses a raw input chunk into key events.
func decodeKeys(b []byte) []Key {
	var keys []Key
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x03:
			keys = append(keys, Key{Name: "ctrl+c"})
		case c == 0x1b && i+2 < len(b) && b[i+1] == '[':
			switch b[i+2] {
			case 'A':
				keys = append(keys, Key{Name: "up"})
			case 'B':
				keys = append(keys, Key{Name: "down"})
			case 'C':
				keys = append(keys, Key{Name: "right"})
			case 'D':
				keys = append(keys, Key{Name: "left"})
			}
			i += 2
		case c >= 0x20 && c < 0x7f:
			keys = append(keys, Key{Name: string(rune(c)), Rune: rune(c)})
		}
	}
	return keys
}
