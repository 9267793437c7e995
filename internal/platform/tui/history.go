package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorguess/internal/storage"
)

// maxHistory is how many streaks the overlay loads.
const maxHistory = 10

// HistorySource supplies recorded streaks for the history overlay.
type HistorySource interface {
	TopStreaks(limit int) ([]storage.StreakEntry, error)
}

// historyView is the streak history overlay: a table of the longest
// finished streaks for the current player.
type historyView struct {
	source  HistorySource
	entries []storage.StreakEntry
	err     error
	table   table.Model
}

func newHistoryView(source HistorySource, height int) historyView {
	h := historyView{source: source}
	h.table = newHistoryTable(height)
	return h
}

func newHistoryTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Streak", Width: 8},
		{Title: "Mode", Width: 6},
		{Title: "Date", Width: 14},
	}

	rows := height - 10 // Leave room for title, help, and modal border
	if rows < 3 {
		rows = 3
	}
	if rows > maxHistory {
		rows = maxHistory
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the entries from the source.
func (h *historyView) load() {
	h.entries, h.err = nil, nil
	if h.source != nil {
		h.entries, h.err = h.source.TopStreaks(maxHistory)
	}

	rows := make([]table.Row, len(h.entries))
	for i, e := range h.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(e.Length),
			e.Mode,
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h historyView) update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h historyView) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render("STREAK HISTORY"))
	b.WriteString("\n\n")

	switch {
	case h.err != nil:
		b.WriteString(theme.Empty.Render("Could not load history."))
	case len(h.entries) == 0:
		b.WriteString(theme.Empty.Render("No streaks recorded yet.\nMiss a guess to bank one!"))
	default:
		b.WriteString(h.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render("t/esc close • q quit"))
	return theme.Modal.Render(b.String())
}
