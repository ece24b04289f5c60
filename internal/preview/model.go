// Package preview shows the page in a terminal.
//
// The preview is a second host for the scroll-reveal machinery: the document
// is laid out as lines, the scroll offset drives a reveal.ScrollHost, and the
// page session reveals job rows, the technology grid and project cards
// exactly as the browser script does. The content width is fixed when the
// preview starts so element bounds stay put for the whole session; resizing
// the terminal only changes the viewport height.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sakif/portfolio/internal/page"
	"github.com/sakif/portfolio/internal/reveal"
	"github.com/sakif/portfolio/internal/view"
)

// statusHeight is the number of lines below the viewport.
const statusHeight = 1

// Model is the Bubbletea state of the preview.
type Model struct {
	session *page.Session
	host    *reveal.ScrollHost
	keys    keyMap
	help    help.Model

	width  int
	height int
	offset int
	frame  Frame
}

// NewModel lays the page out at width, mounts a session over a scroll host
// sized to the terminal height and returns the initial model.
func NewModel(c *page.Composer, width, height int) Model {
	m := Model{
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  max(width, minWidth),
		height: height,
	}

	// Layout does not depend on visibility, so an empty snapshot is enough
	// to find the tracked elements.
	layout := Render(c.Document(view.Visibility{}), m.width).Layout

	m.host = reveal.NewScrollHost(float64(m.viewHeight()))
	m.session = c.Mount(m.host, layout)
	m.refresh()
	return m
}

// Session returns the mounted page session.
func (m Model) Session() *page.Session { return m.session }

// Offset returns the current scroll offset in lines.
func (m Model) Offset() int { return m.offset }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.host.Resize(float64(m.viewHeight()))
		m.scrollTo(m.offset)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.session.Toggle()
		m.refresh()
	case key.Matches(msg, m.keys.Down):
		m.scrollTo(m.offset + 1)
	case key.Matches(msg, m.keys.Up):
		m.scrollTo(m.offset - 1)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.offset + m.viewHeight())
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.offset - m.viewHeight())
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(len(m.frame.Lines))
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	h := m.viewHeight()
	end := min(m.offset+h, len(m.frame.Lines))
	visible := m.frame.Lines[min(m.offset, end):end]

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(visible); i < h; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	doc := m.session.Document()
	mode := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(doc.Palette.Accent)).
		Render(doc.Toggle.Icon + " " + doc.Mode.String())
	return mode + "  " + m.help.View(m.keys)
}

func (m Model) viewHeight() int {
	return max(m.height-statusHeight, 1)
}

// scrollTo clamps y to the document and moves the host, which delivers the
// intersection pass before the frame is rebuilt.
func (m *Model) scrollTo(y int) {
	maxOffset := max(len(m.frame.Lines)-m.viewHeight(), 0)
	m.offset = min(max(y, 0), maxOffset)
	m.host.ScrollTo(float64(m.offset))
	m.refresh()
}

func (m *Model) refresh() {
	m.frame = Render(m.session.Document(), m.width)
}
