package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendpad/spendpad/internal/config"
	"github.com/spendpad/spendpad/internal/expense"
	"github.com/spendpad/spendpad/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.FileStore) {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())

	cfg := config.New()
	cfg.DataFile = filepath.Join(t.TempDir(), "expenses.json")

	files := storage.NewFileStore(cfg.DataFile)
	store := expense.NewStore()
	return NewModel(context.Background(), cfg, store, files), files
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestModel_SubmitAddsAndPersists(t *testing.T) {
	m, files := newTestModel(t)

	m = typeInto(t, m, "Coffee")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	m = typeInto(t, m, "4.80")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Equal(t, 1, m.store.Len())
	rec := m.store.All()[0]
	assert.Equal(t, "Coffee", rec.Description)
	assert.InDelta(t, 4.80, rec.Amount, 1e-9)

	assert.Equal(t, statusSuccess, m.statusKind)
	assert.NotNil(t, cmd, "status dismissal tick is scheduled")
	assert.Empty(t, m.description.Value(), "form clears after a successful add")
	assert.Empty(t, m.amount.Value())

	persisted := files.Load(context.Background())
	require.Len(t, persisted, 1, "write-through happens on every mutation")
	assert.Equal(t, rec.ID, persisted[0].ID)
}

func TestModel_SubmitValidationKeepsInput(t *testing.T) {
	m, files := newTestModel(t)

	m = typeInto(t, m, "Coffee")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	m = typeInto(t, m, "abc")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, 0, m.store.Len(), "invalid input must not mutate the store")
	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, "Coffee", m.description.Value(), "input is retained for correction")
	assert.Equal(t, "abc", m.amount.Value())
	assert.Empty(t, files.Load(context.Background()))
}

func TestModel_DeleteSelected(t *testing.T) {
	m, files := newTestModel(t)
	_, err := m.store.Add("Lunch", "12", "food")
	require.NoError(t, err)
	_, err = m.store.Add("Taxi", "30", "transport")
	require.NoError(t, err)

	m.setFocus(fieldList)
	m.selected = 0 // newest record: Taxi

	updated, _ := m.Update(keyRunes("d"))
	m = updated.(Model)

	require.Equal(t, 1, m.store.Len())
	assert.Equal(t, "Lunch", m.store.All()[0].Description)
	assert.Equal(t, statusSuccess, m.statusKind)
	assert.Contains(t, m.status, "Taxi")
	assert.Len(t, files.Load(context.Background()), 1)
}

func TestModel_DeleteOnEmptyListIsNoop(t *testing.T) {
	m, _ := newTestModel(t)
	m.setFocus(fieldList)

	updated, _ := m.Update(keyRunes("d"))
	m = updated.(Model)

	assert.Equal(t, 0, m.store.Len())
	assert.Equal(t, statusNone, m.statusKind)
}

func TestModel_StatusAutoDismiss(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.setStatus(statusError, "boom")
	m = updated.(Model)
	require.Equal(t, "boom", m.status)

	// A stale tick from an earlier message must not clear a newer one.
	updated, _ = m.Update(statusExpiredMsg{seq: m.statusSeq - 1})
	m = updated.(Model)
	assert.Equal(t, "boom", m.status)

	updated, _ = m.Update(statusExpiredMsg{seq: m.statusSeq})
	m = updated.(Model)
	assert.Empty(t, m.status)
	assert.Equal(t, statusNone, m.statusKind)
}

func TestModel_CategoryCycling(t *testing.T) {
	m, _ := newTestModel(t)
	m.setFocus(fieldCategory)
	start := m.categoryIdx

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, (start+1)%len(m.categories), m.categoryIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, start, m.categoryIdx)
}

func TestModel_ViewShowsAggregates(t *testing.T) {
	m, _ := newTestModel(t)
	_, err := m.store.Add("Groceries", "62.10", "food")
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "SPENDPAD")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "This Month")
	assert.Contains(t, view, "Top Category")
	assert.Contains(t, view, "Food")
	assert.Contains(t, view, "62.10")
}

func TestModel_ViewEmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No expenses yet")
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		selected int
		size     int
		wantFrom int
		wantTo   int
	}{
		{name: "fits entirely", total: 5, selected: 2, size: 10, wantFrom: 0, wantTo: 5},
		{name: "top of long list", total: 100, selected: 0, size: 10, wantFrom: 0, wantTo: 10},
		{name: "middle of long list", total: 100, selected: 50, size: 10, wantFrom: 45, wantTo: 55},
		{name: "bottom of long list", total: 100, selected: 99, size: 10, wantFrom: 90, wantTo: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := listWindow(tt.total, tt.selected, tt.size)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$4.80", FormatAmount("$", 4.8))
	assert.Equal(t, "$1,234.50", FormatAmount("$", 1234.5))
	assert.Equal(t, "€0.00", FormatAmount("€", 0))
}

func TestRenderStatsSummary_Empty(t *testing.T) {
	out := RenderStatsSummary(nil, "$", time.Now())
	assert.Contains(t, out, "$0.00")
	assert.Contains(t, out, "—")
}
