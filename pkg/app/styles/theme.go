package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")
	Highlight  = lipgloss.Color("#37474F")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Panes
	PaneStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Muted)

	FocusedPaneStyle = lipgloss.NewStyle().
				Border(ThickBorder).
				BorderForeground(Primary)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// List rows
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Background(Highlight).
				Bold(true)

	InactiveSelectionStyle = lipgloss.NewStyle().
				Foreground(Secondary)

	StatusBusy = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// Pane returns the border style of a pane.
func Pane(focused bool) lipgloss.Style {
	if focused {
		return FocusedPaneStyle
	}
	return PaneStyle
}
