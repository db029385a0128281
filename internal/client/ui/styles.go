package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4A76A8")) // the VK blue of the original

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A76A8")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4A76A8")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828"))

	bannedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")).Bold(true)

	onlineDot  = lipgloss.NewStyle().Foreground(lipgloss.Color("#43A047")).Render("●")
	offlineDot = mutedStyle.Render("●")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#505050")).
			Padding(0, 1)
)
