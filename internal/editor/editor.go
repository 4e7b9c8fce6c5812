// Package editor is an interactive SQL prompt built on a terminal
// textarea. Ctrl+D submits the statement, Esc cancels.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eduardofuncao/pgbridge/internal/parser"
	"github.com/eduardofuncao/pgbridge/internal/styles"
)

const (
	placeholderText = "Enter your SQL..."
	charLimit       = 10000
	initialWidth    = 80
	minLineHeight   = 3
	maxLineHeight   = 15
	widthMargin     = 4
	maxWidth        = 120
	separatorLine   = "──────────────────────────────────────────────────────────"
	helpText        = "Ctrl+D: Execute | Esc/Ctrl+C: Cancel"
)

type Model struct {
	textArea  textarea.Model
	width     int
	title     string
	sql       string
	submitted bool
}

func New(title, initialSQL string) Model {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.CharLimit = charLimit
	ta.SetWidth(initialWidth)

	formatted := parser.FormatSQL(initialSQL)
	ta.SetValue(formatted)
	ta.SetHeight(clamp(countLines(formatted), minLineHeight, maxLineHeight))

	return Model{textArea: ta, title: title}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.sql = strings.TrimSpace(m.textArea.Value())
			m.submitted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textArea.SetWidth(clamp(m.width-widthMargin, initialWidth, maxWidth))
	}

	var cmd tea.Cmd
	m.textArea, cmd = m.textArea.Update(msg)

	height := clamp(countLines(m.textArea.Value()), minLineHeight, maxLineHeight)
	if height != m.textArea.Height() {
		m.textArea.SetHeight(height)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.submitted {
		return fmt.Sprintf(
			"%s\n%s\n%s\n",
			styles.Title.Render("◆ "+m.title),
			parser.HighlightSQL(m.textArea.Value()),
			styles.Separator.Render(separatorLine),
		)
	}
	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n",
		styles.Title.Render("◆ "+m.title),
		m.textArea.View(),
		styles.Faint.Render(helpText),
		styles.Separator.Render(separatorLine),
	)
}

// Prompt runs the editor and returns the submitted SQL. submitted is
// false when the user cancelled.
func Prompt(title, initialSQL string) (sql string, submitted bool, err error) {
	final, err := tea.NewProgram(New(title, initialSQL)).Run()
	if err != nil {
		return "", false, err
	}
	m := final.(Model)
	return m.sql, m.submitted, nil
}

func countLines(s string) int {
	if s == "" {
		return 1
	}
	return strings.Count(s, "\n") + 1
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
