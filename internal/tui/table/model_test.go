package table

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/manager"
)

func newTestManager() *manager.Manager {
	at := func(s string) time.Time {
		t, _ := time.Parse(fixture.DateLayout, s)
		return t
	}

	m := manager.New(zap.NewNop())
	m.Add(fixture.New(1, "EPL", "Arsenal", "Chelsea", at("2024-01-01 15:00")))
	m.Add(fixture.New(2, "EPL", "Chelsea", "Arsenal", at("2024-02-01 15:00")))
	m.Add(fixture.New(3, "La Liga", "Real Madrid", "Barcelona", at("2023-12-20 21:00")))
	m.Add(fixture.New(5, "Bundesliga", "Bayern", "Dortmund", at("2024-01-01 15:00")))
	return m
}

func firstColumn(m *Model) string {
	var ids []string
	for _, row := range m.table.Rows() {
		ids = append(ids, row[0])
	}
	return strings.Join(ids, ",")
}

func TestNewModelSortsRows(t *testing.T) {
	model := NewModel(newTestManager(), manager.SortByDate)

	if got := firstColumn(model); got != "3,1,5,2" {
		t.Errorf("Expected rows '3,1,5,2', got '%s'", got)
	}

	row := model.table.Rows()[0]
	if row[1] != "20 Dec 2023 21:00" {
		t.Errorf("Expected formatted date, got '%s'", row[1])
	}
}

func TestSortKeyCycles(t *testing.T) {
	model := NewModel(newTestManager(), manager.SortByDate)
	press := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}

	model, _ = model.Update(press)
	if model.SortKey() != manager.SortByLeague {
		t.Fatalf("Expected league sort, got %s", model.SortKey())
	}
	if got := firstColumn(model); got != "5,1,2,3" {
		t.Errorf("Expected rows '5,1,2,3', got '%s'", got)
	}

	model, _ = model.Update(press)
	if model.SortKey() != manager.SortByHome {
		t.Fatalf("Expected home sort, got %s", model.SortKey())
	}
	if got := firstColumn(model); got != "1,5,2,3" {
		t.Errorf("Expected rows '1,5,2,3', got '%s'", got)
	}

	model, _ = model.Update(press)
	if model.SortKey() != manager.SortByDate {
		t.Errorf("Expected sort to wrap to date, got %s", model.SortKey())
	}
}

func TestView(t *testing.T) {
	model := NewModel(newTestManager(), manager.SortByHome)

	view := model.View()
	if !strings.Contains(view, "сортировка: home") {
		t.Errorf("Expected sort key in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Bayern") {
		t.Errorf("Expected team names in view, got:\n%s", view)
	}
}
