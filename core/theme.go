package core

import "github.com/charmbracelet/lipgloss"

// Theme is the palette the shell draws its chrome with.
type Theme struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Border  lipgloss.Color
	Bar     lipgloss.Color
	Surface lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Admin   lipgloss.Color
}

var DefaultTheme = Theme{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Dim:     "#7f849c",
	Border:  "#585b70",
	Bar:     "#181825",
	Surface: "#313244",
	Accent:  "#89b4fa",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
	Admin:   "#f9e2af",
}

type shellStyles struct {
	app       lipgloss.Style
	brand     lipgloss.Style
	bar       lipgloss.Style
	sep       lipgloss.Style
	tabOn     lipgloss.Style
	tabOff    lipgloss.Style
	tabLocked lipgloss.Style
	badge     map[string]lipgloss.Style
	statusOK  lipgloss.Style
	statusErr lipgloss.Style
	footerKey lipgloss.Style
	footerTxt lipgloss.Style
	jumpKey   lipgloss.Style
}

func (t Theme) styles() shellStyles {
	onBar := lipgloss.NewStyle().Background(t.Bar)
	return shellStyles{
		app:       lipgloss.NewStyle().Foreground(t.Text),
		brand:     onBar.Foreground(t.Accent).Bold(true),
		bar:       onBar.Foreground(t.Text),
		sep:       onBar.Foreground(t.Border),
		tabOn:     lipgloss.NewStyle().Background(t.Surface).Foreground(t.Accent).Bold(true).Padding(0, 1),
		tabOff:    onBar.Foreground(t.Dim).Padding(0, 1),
		tabLocked: onBar.Foreground(t.Border).Padding(0, 1),
		badge: map[string]lipgloss.Style{
			"":        onBar.Foreground(t.Dim),
			AdminRole: onBar.Foreground(t.Admin).Bold(true),
			"member":  onBar.Foreground(t.Success),
		},
		statusOK:  lipgloss.NewStyle().Background(t.Surface).Foreground(t.Success),
		statusErr: lipgloss.NewStyle().Background(t.Surface).Foreground(t.Error),
		footerKey: onBar.Foreground(t.Accent).Bold(true),
		footerTxt: onBar.Foreground(t.Muted),
		jumpKey:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

var shell = DefaultTheme.styles()

// badgeStyle colours the session label by who is signed in.
func (s shellStyles) badgeStyle(session Session) lipgloss.Style {
	switch {
	case !session.SignedIn():
		return s.badge[""]
	case session.IsAdmin():
		return s.badge[AdminRole]
	default:
		return s.badge["member"]
	}
}
