package styles

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorAccent  = "205" // Magenta - titles, headers, emphasis
	ColorSuccess = "171" // Purple - success messages
	ColorKeyword = "86"  // Cyan - SQL keywords
	ColorString  = "220" // Yellow - SQL strings
	ColorFaint   = "238" // Gray - borders, separators, help text
	ColorCell    = "252" // Light Gray - normal cell text
)

// Common reusable styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")). // Red
		Bold(true)

	Faint = lipgloss.NewStyle().
		Faint(true)

	Separator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)

// SQL syntax highlighting styles
var (
	SQLKeyword = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorKeyword)).
			Bold(true)

	SQLString = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorString))
)

// Table component styles
var (
	TableHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	TableCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCell))

	TableBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)
