package notepad

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			Padding(0, 1)

	hoverButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#0AF"))

	copiedStyle = buttonStyle.
			Foreground(lipgloss.Color("#16A34A")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")).
			Padding(0, 1)
)
