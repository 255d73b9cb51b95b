package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/queuedesk/widgets"
)

// Chrome rows drawn around the tab body.
const (
	headerRows = 1
	statusRows = 1
	footerRows = 1
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	bodyHeight := max(0, m.height-headerRows-statusRows-footerRows)

	body := ""
	if tab := m.ActiveTab(); tab != nil && bodyHeight > 0 {
		body = tab.Build(&m).Render(m.BodyWidth(), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, m.width-12), max(8, m.height-8))
		body = widgets.RenderPopup(body, popup, m.BodyWidth(), bodyHeight)
	}

	rows := []string{
		m.headerLine(width),
		m.statusLine(width),
		padLines(body, bodyHeight),
		m.footerLine(width),
	}
	view := padLines(strings.Join(rows, "\n"), max(1, m.height))
	return shell.app.Width(width).MaxWidth(width).Render(view)
}

// headerLine shows the tab strip on the left and who is signed in on the
// right. Admin-only tabs are dimmed for everybody else.
func (m Model) headerLine(width int) string {
	parts := []string{shell.brand.Render(" queuedesk ")}
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		switch {
		case i == m.activeTab:
			parts = append(parts, shell.tabOn.Render(label))
		case adminOnly(t) && !m.session.IsAdmin():
			parts = append(parts, shell.tabLocked.Render(label))
		default:
			parts = append(parts, shell.tabOff.Render(label))
		}
	}
	left := strings.Join(parts, shell.sep.Render("│"))
	right := shell.badgeStyle(m.session).Render(m.session.Label() + " ")
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return fillBar(shell.bar, width, left+shell.bar.Render(strings.Repeat(" ", gap))+right)
}

func (m Model) statusLine(width int) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := shell.statusOK
	if m.statusErr {
		style = shell.statusErr
	}
	return fillBar(style, width, " "+msg)
}

// footerLine lists one hint per action bound in the active scope, dropping
// the hints that do not fit.
func (m Model) footerLine(width int) string {
	sep := shell.bar.Render("  ")
	line := shell.bar.Render(" ")
	for i, h := range m.keys.Help(m.ActiveScope()) {
		hint := shell.footerKey.Render(h.Keys) + shell.bar.Render(" ") + shell.footerTxt.Render(h.Desc)
		if i > 0 {
			hint = sep + hint
		}
		if ansi.StringWidth(line)+ansi.StringWidth(hint) > width {
			break
		}
		line += hint
	}
	return fillBar(shell.bar, width, line)
}

func fillBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += style.Render(strings.Repeat(" ", pad))
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

// padLines returns exactly height lines of s, cutting or padding as needed.
func padLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// fitBlock truncates each line of s to width and keeps at most height lines.
func fitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
