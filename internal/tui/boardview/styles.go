package boardview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/highlight"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			Bold(true).
			Padding(0, 1)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6366F1")).
			Background(lipgloss.Color("#1E1B4B")).
			Padding(0, 1)

	activeChipStyle = chipStyle.
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FDE047")).
			Bold(true)

	hoverChipStyle = chipStyle.
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#4338CA"))

	removeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	hoverButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#0AF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#B91C1C")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#15803D")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"}).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	openCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#6366F1"))

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#0AF"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7")).
			Padding(0, 1)

	questionStyles = highlight.DefaultStyles()
)
