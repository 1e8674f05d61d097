package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/circle-shooter/internal/storage"
)

func TestOutcomeRows(t *testing.T) {
	rows := OutcomeRows([]storage.OutcomeEntry{
		{ID: 7, Outcome: "won", Ticks: 900, Shots: 12, EnemiesDestroyed: 7},
		{ID: 6, Outcome: "lost", Ticks: 120, Shots: 3, EnemiesDestroyed: 1},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	want := []string{"7", "WON", "900", "12", "7"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][1] != "LOST" {
		t.Errorf("row 1 outcome = %q, expected LOST", rows[1][1])
	}
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		summary  storage.OutcomeSummary
		expected string
	}{
		{storage.OutcomeSummary{}, "Played 0  Won 0  Lost 0"},
		{storage.OutcomeSummary{Played: 4, Won: 1, Lost: 3}, "Played 4  Won 1  Lost 3  (25% won)"},
	}

	for _, tc := range tests {
		if got := SummaryLine(tc.summary); got != tc.expected {
			t.Errorf("SummaryLine(%+v) = %q, expected %q", tc.summary, got, tc.expected)
		}
	}
}

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewHistoryModel(store, 80, 24)
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("empty history message missing")
	}

	store.SaveOutcome(storage.OutcomeEntry{Outcome: "won", Ticks: 10})
	store.SaveOutcome(storage.OutcomeEntry{Outcome: "lost", Ticks: 20})

	next, _ := m.Update(runeKey('r'))
	m = next.(HistoryModel)
	view := m.View()
	if !strings.Contains(view, "Played 2  Won 1  Lost 1") {
		t.Errorf("summary missing after refresh:\n%s", view)
	}
	if len(m.outcomes) != 2 {
		t.Errorf("loaded %d outcomes, expected 2", len(m.outcomes))
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	if cmd == nil || m.View() != "" {
		t.Error("esc should quit the history view")
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("nil store should show the empty message")
	}
}
