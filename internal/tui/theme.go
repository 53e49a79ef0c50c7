package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	LightGray   = lipgloss.Color("#aaaaaa")
	White       = lipgloss.Color("#e0e0e0")

	// Prompt and echoed commands
	PromptStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	CommandStyle = lipgloss.NewStyle().
			Foreground(Green)

	// Command output
	OutputStyle = lipgloss.NewStyle().
			Foreground(White)

	// Table
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(DarkGreen)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(BrightGreen).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(White).
			Padding(0, 1)

	// Input
	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DarkGreen).
				Padding(0, 1)

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)

const Banner = `
  ██████╗  ██████╗ ██╗      ██████╗ ██████╗ ███████╗██╗  ██╗
  ██╔══██╗██╔═══██╗██║     ██╔═══██╗██╔══██╗██╔════╝╚██╗██╔╝
  ██████╔╝██║   ██║██║     ██║   ██║██║  ██║█████╗   ╚███╔╝
  ██╔══██╗██║   ██║██║     ██║   ██║██║  ██║██╔══╝   ██╔██╗
  ██║  ██║╚██████╔╝███████╗╚██████╔╝██████╔╝███████╗██╔╝ ██╗
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝
`
