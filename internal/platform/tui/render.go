package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// swatchesPerRow matches the board's three-column grid.
const swatchesPerRow = 3

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.modal.open:
		return m.place(m.renderModal())
	case m.showHistory:
		return m.place(m.history.view(m.theme))
	}
	return m.renderBoard()
}

func (m Model) renderBoard() string {
	sections := []string{
		m.renderHeader(),
		m.renderControls(),
		m.theme.ToneStyle(m.board.Tone).Render(m.board.Message),
		m.renderSwatches(),
		m.renderStreak(),
		m.theme.Help.Render(m.help.View(m.keys)),
	}
	if m.status != "" {
		sections = append(sections, m.theme.Empty.Render(m.status))
	}

	for i, s := range sections {
		sections[i] = centerText(s, m.width)
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderHeader() string {
	b := m.board

	target := m.theme.Target
	if b.Emphasized {
		target = m.theme.TargetEmph
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("The Great"),
		target.Render(b.Target),
		m.theme.HeaderMuted.Render("Color Guessing Game"),
	)

	width := m.width
	if width <= 0 || width > 60 {
		width = 60
	}
	return m.theme.HeaderStyle(b.Accent, b.HasAccent).Width(width).Render(body)
}

func (m Model) renderControls() string {
	b := m.board
	buttons := []string{m.theme.Button.Render("[n] " + strings.ToUpper(b.AdvanceLabel))}

	keys := []string{"e", "h"}
	for i, mode := range b.Modes {
		label := fmt.Sprintf("[%s] %s", keys[i], strings.ToUpper(mode.Label))
		buttons = append(buttons, m.theme.ModeStyle(mode.Selected, mode.Accent).Render(label))
	}

	buttons = append(buttons, m.theme.Button.Render("[x] RESET STREAK"))
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m Model) renderSwatches() string {
	var rows []string
	var row []string

	for i, s := range m.board.Swatches {
		if !s.Visible {
			continue
		}

		label := strconv.Itoa(i + 1)
		if s.Wrong {
			label = "✗"
		}
		cursor := i == m.cursor && !m.modal.open
		row = append(row, m.theme.SwatchStyle(s, cursor).Render(label))

		if len(row) == swatchesPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) renderStreak() string {
	return m.theme.Streak.Render("Current Streak: ") +
		m.theme.Value.Render(strconv.Itoa(m.board.Current)) +
		m.theme.Streak.Render("  |  Best Streak: ") +
		m.theme.Value.Render(strconv.Itoa(m.board.Best))
}

func (m Model) renderModal() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.ModalTitle.Render("RESET STREAK"),
		"",
		m.modal.prompt,
		"",
		m.theme.Help.Render("[y] yes  [n] no"),
	)
	return m.theme.Modal.Render(body)
}

// place centers an overlay in the window.
func (m Model) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

// centerText centers a (possibly multi-line, styled) block within width.
func centerText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
