// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-fixtures/internal/manager"
	"github.com/hazadus/go-fixtures/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	manager  *manager.Manager
	saveFunc func() error // Функция для сохранения избранного
	sortKey  manager.SortKey
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(m *manager.Manager, saveFunc func() error, sortKey manager.SortKey) *App {
	return &App{
		manager:  m,
		saveFunc: saveFunc,
		sortKey:  sortKey,
	}
}

// Model создает модель Bubble Tea для приложения
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.manager, tuiApp.saveFunc, tuiApp.sortKey)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
