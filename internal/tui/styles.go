package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TextNormal   lipgloss.Color
	TextSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TextNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TextSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Timer screen
	StatusRunning lipgloss.Style
	StatusStopped lipgloss.Style
	Elapsed       lipgloss.Style

	// Pickers
	PickerTitle        lipgloss.Style
	PickerTitleFocused lipgloss.Style
	ItemNormal         lipgloss.Style
	ItemSelected       lipgloss.Style
	ItemArchived       lipgloss.Style
	CursorSelected     lipgloss.Style

	// Reports
	Total    lipgloss.Style
	Bar      lipgloss.Style
	BarLabel lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		StatusRunning: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		StatusStopped: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Elapsed: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		PickerTitle: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Bold(true),

		PickerTitleFocused: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ItemNormal: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		ItemSelected: lipgloss.NewStyle().
			Foreground(Colors.TextSelected).
			Bold(true),

		ItemArchived: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TextSelected).
			Bold(true),

		Total: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		Bar: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		BarLabel: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
