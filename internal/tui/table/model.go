// Package table содержит экран таблицы матчей с сортировкой для TUI
package table

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/manager"
	"github.com/hazadus/go-fixtures/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0, 1, 2)
	baseStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 2)
)

var columns = []table.Column{
	{Title: "ID", Width: 6},
	{Title: "Дата", Width: 17},
	{Title: "Лига", Width: 16},
	{Title: "Хозяева", Width: 22},
	{Title: "Гости", Width: 22},
}

// Model представляет экран таблицы матчей
type Model struct {
	table    table.Model
	manager  *manager.Manager
	sortKey  manager.SortKey
	quitting bool
}

// NewModel создает таблицу, отсортированную по ключу
func NewModel(m *manager.Manager, sortKey manager.SortKey) *Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	model := &Model{
		table:   t,
		manager: m,
		sortKey: sortKey,
	}
	model.Refresh()
	return model
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// SortKey возвращает текущий ключ сортировки
func (m *Model) SortKey() manager.SortKey {
	return m.sortKey
}

// Refresh перестраивает строки таблицы
func (m *Model) Refresh() {
	fixtures := m.manager.Sorted(m.sortKey)
	rows := make([]table.Row, len(fixtures))
	for i, f := range fixtures {
		rows[i] = table.Row{
			strconv.Itoa(f.MatchID),
			f.DateTime.Format(fixture.DisplayLayout),
			utils.TruncateString(f.League, 16),
			utils.TruncateString(f.Home, 22),
			utils.TruncateString(f.Away, 22),
		}
	}
	m.table.SetRows(rows)
}

// nextSortKey возвращает следующий ключ сортировки по кругу
func nextSortKey(key manager.SortKey) manager.SortKey {
	for i, k := range manager.SortKeys {
		if k == key {
			return manager.SortKeys[(i+1)%len(manager.SortKeys)]
		}
	}
	return manager.SortKeys[0]
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3)) // Заголовок, рамка и справка
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit

		case "s":
			m.sortKey = nextSortKey(m.sortKey)
			m.Refresh()
			m.table.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("📋 Матчи: " + strconv.Itoa(len(m.table.Rows())) + ", сортировка: " + string(m.sortKey))
	help := helpStyle.Render("s: сменить сортировку • ↑/↓: прокрутка • q: выход")
	return title + "\n" + baseStyle.Render(m.table.View()) + "\n" + help
}
