package framekit

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaModel adapts a component tree to the bubbletea runtime as an alternate
// host: window size messages become resize events, wheel messages become
// scroll events on an optional scroll target, and View serializes the cell
// buffer. Use it when embedding frames in a bubbletea program instead of
// running the built-in App loop.
type TeaModel struct {
	root   Component
	scroll *ScrollFrame

	width  int
	height int

	status      string
	statusStyle lipgloss.Style
	wheelStep   int
}

// NewTeaModel wraps a root component for bubbletea.
func NewTeaModel(root Component) TeaModel {
	return TeaModel{
		root:      root,
		wheelStep: 3,
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7")),
	}
}

// WithStatus reserves the bottom row for a status line.
func (m TeaModel) WithStatus(status string) TeaModel {
	m.status = status
	return m
}

// WithScrollTarget routes wheel and arrow input to a scroll frame.
func (m TeaModel) WithScrollTarget(sf *ScrollFrame) TeaModel {
	m.scroll = sf
	return m
}

// WithWheelStep sets the cells scrolled per wheel tick.
func (m TeaModel) WithWheelStep(step int) TeaModel {
	if step > 0 {
		m.wheelStep = step
	}
	return m
}

// Init implements tea.Model.
func (m TeaModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(0, -1)
		case "down", "j":
			m.scrollBy(0, 1)
		case "left", "h":
			m.scrollBy(-1, 0)
		case "right", "l":
			m.scrollBy(1, 0)
		case "pgup":
			m.scrollBy(0, -m.pageStep())
		case "pgdown":
			m.scrollBy(0, m.pageStep())
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.scrollBy(0, -m.wheelStep)
			case tea.MouseButtonWheelDown:
				m.scrollBy(0, m.wheelStep)
			case tea.MouseButtonWheelLeft:
				m.scrollBy(-m.wheelStep, 0)
			case tea.MouseButtonWheelRight:
				m.scrollBy(m.wheelStep, 0)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m TeaModel) scrollBy(dx, dy int) {
	if m.scroll != nil {
		m.scroll.OnScroll(dx, dy)
	}
}

func (m TeaModel) pageStep() int {
	if m.scroll != nil {
		if h := m.scroll.ViewportSize().Height; h > 1 {
			return h - 1
		}
	}
	return 1
}

// View implements tea.Model.
func (m TeaModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	contentH := m.height
	if m.status != "" {
		contentH--
	}
	if contentH <= 0 {
		return ""
	}

	buf := NewBuffer(m.width, contentH)
	m.root.SetConstraints(m.width, contentH)
	m.root.Render(buf, 0, 0)

	view := buf.RenderANSI()
	if m.status != "" {
		view += "\r\n" + m.statusStyle.Width(m.width).Render(m.status)
	}
	return view
}
