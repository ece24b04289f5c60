package preview

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/sakif/portfolio/internal/page"
)

// MaxWidth caps the content width on wide terminals.
const MaxWidth = 100

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("preview: stdout is not a terminal")

// Run starts the interactive preview on the current terminal and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, c *page.Composer) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("preview: reading terminal size: %w", err)
	}

	m := NewModel(c, min(width, MaxWidth), height)
	defer m.Session().Unmount()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
