package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	termStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	pronunciationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true)
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(1, 2)

func (m Model) centered(s string) string {
	return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
}

// cardView draws the title on top, the hint bar at the bottom and the term
// with its rows in between, balanced by the engine's view weight.
func (m Model) cardView() string {
	var header, body, footer []string

	if title, ok := m.engine.Title(); ok {
		header = append(header, m.centered(titleStyle.Render(title)))
	}

	body = append(body, m.centered(termStyle.Render(m.engine.MainText())))
	if pron, ok := m.engine.Pronunciation(); ok {
		body = append(body, m.centered(pronunciationStyle.Render(pron)))
	}
	if desc, ok := m.engine.Description(); ok {
		body = append(body, m.centered(labelStyle.Render(descriptionPrefix)+desc))
	}
	if example, ok := m.engine.Example(); ok {
		body = append(body, m.centered(labelStyle.Render(examplePrefix)+example))
	}

	if hints, ok := m.engine.Hints(); ok {
		bar := fmt.Sprintf("%s %s", m.position(), hints)
		footer = append(footer, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, hintStyle.Render(bar)))
	}

	used := 0
	for _, block := range [][]string{header, body, footer} {
		for _, s := range block {
			used += lipgloss.Height(s)
		}
	}
	weight := m.engine.CountViewWeight(m.width, len(descriptionPrefix), len(examplePrefix))
	top, bottom := spacers(m.height-used, weight)

	rows := make([]string, 0, len(header)+len(body)+len(footer)+2)
	rows = append(rows, header...)
	if top > 0 {
		rows = append(rows, strings.Repeat("\n", top-1))
	}
	rows = append(rows, body...)
	if bottom > 0 {
		rows = append(rows, strings.Repeat("\n", bottom-1))
	}
	rows = append(rows, footer...)
	return strings.Join(rows, "\n")
}

func (m Model) position() string {
	if m.engine.CardsLen() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.engine.Cursor()+1, m.engine.CardsLen())
}

func (m Model) helpView() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Help"),
		"",
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBoxStyle.Render(content))
}
