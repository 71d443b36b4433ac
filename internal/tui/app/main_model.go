// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-fixtures/internal/manager"
	"github.com/hazadus/go-fixtures/internal/tui/browser"
	"github.com/hazadus/go-fixtures/internal/tui/search"
	"github.com/hazadus/go-fixtures/internal/tui/table"
)

var navStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(4)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// BrowserScreen - экран лиг и команд
	BrowserScreen ScreenType = iota
	// TableScreen - экран таблицы матчей
	TableScreen
	// SearchScreen - экран поиска
	SearchScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	manager       *manager.Manager
	currentScreen ScreenType
	browserModel  *browser.Model
	tableModel    *table.Model
	searchModel   *search.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(m *manager.Manager, saveFunc func() error, sortKey manager.SortKey) *MainModel {
	return &MainModel{
		manager:       m,
		currentScreen: BrowserScreen,
		browserModel:  browser.NewModel(m, saveFunc),
		tableModel:    table.NewModel(m, sortKey),
		searchModel:   search.NewModel(m),
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.browserModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+b":
			m.currentScreen = BrowserScreen
			m.browserModel.Refresh()
			return m, nil

		case "ctrl+t":
			m.currentScreen = TableScreen
			m.tableModel.Refresh()
			return m, nil

		case "ctrl+f":
			m.currentScreen = SearchScreen
			return m, m.searchModel.Init()
		}

	case tea.WindowSizeMsg:
		// Размер окна нужен всем экранам, а не только активному
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.browserModel, cmd = m.browserModel.Update(msg)
		cmds = append(cmds, cmd)
		m.tableModel, cmd = m.tableModel.Update(msg)
		cmds = append(cmds, cmd)
		m.searchModel, cmd = m.searchModel.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case BrowserScreen:
		m.browserModel, cmd = m.browserModel.Update(msg)
	case TableScreen:
		m.tableModel, cmd = m.tableModel.Update(msg)
	case SearchScreen:
		m.searchModel, cmd = m.searchModel.Update(msg)
	}
	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var view string
	switch m.currentScreen {
	case BrowserScreen:
		view = m.browserModel.View()
	case TableScreen:
		view = m.tableModel.View()
	case SearchScreen:
		view = m.searchModel.View()
	default:
		return "Неизвестный экран"
	}
	return view + "\n" + navStyle.Render("Ctrl+B: лиги • Ctrl+T: таблица • Ctrl+F: поиск • Ctrl+C: выход")
}
