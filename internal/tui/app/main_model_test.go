package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/manager"
)

func newTestModel() *MainModel {
	m := manager.New(zap.NewNop())
	m.Add(fixture.New(1, "EPL", "Arsenal", "Chelsea", time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)))
	return NewMainModel(m, nil, manager.SortByDate)
}

func TestMainModelRouting(t *testing.T) {
	model := newTestModel()

	// Проверяем начальное состояние
	if model.currentScreen != BrowserScreen {
		t.Errorf("Expected initial screen to be BrowserScreen, got %v", model.currentScreen)
	}

	tests := []struct {
		key      tea.KeyType
		expected ScreenType
	}{
		{tea.KeyCtrlT, TableScreen},
		{tea.KeyCtrlF, SearchScreen},
		{tea.KeyCtrlB, BrowserScreen},
	}

	for _, tt := range tests {
		updatedModel, _ := model.Update(tea.KeyMsg{Type: tt.key})
		model = updatedModel.(*MainModel)
		if model.CurrentScreen() != tt.expected {
			t.Errorf("Expected screen %v after %v, got %v", tt.expected, tt.key, model.CurrentScreen())
		}
	}

	// Тестируем глобальные горячие клавиши
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected tea.Quit command after Ctrl+C")
	}
}

func TestMainModelView(t *testing.T) {
	model := newTestModel()

	for _, screen := range []ScreenType{BrowserScreen, TableScreen, SearchScreen} {
		model.currentScreen = screen
		if model.View() == "" {
			t.Errorf("Expected non-empty view for screen %v", screen)
		}
	}

	// Тестируем состояние с несуществующим экраном
	model.currentScreen = ScreenType(999)
	view := model.View()
	expectedError := "Неизвестный экран"
	if view != expectedError {
		t.Errorf("Expected '%s' for unknown screen, got '%s'", expectedError, view)
	}
}

func TestWindowSizeReachesAllScreens(t *testing.T) {
	model := newTestModel()

	updatedModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updatedModel.(*MainModel)

	if model.currentScreen != BrowserScreen {
		t.Errorf("Expected resize to keep BrowserScreen, got %v", model.currentScreen)
	}
}
