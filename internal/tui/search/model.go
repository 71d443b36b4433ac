// Package search содержит экран поиска матчей по ключевому слову для TUI
package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/manager"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0, 1, 2)
	inputStyle   = lipgloss.NewStyle().MarginLeft(2)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 1, 2)
	resultStyle  = lipgloss.NewStyle().PaddingLeft(4)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 2)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// defaultVisibleResults сколько результатов показывать до получения размера окна
const defaultVisibleResults = 15

// Model представляет экран поиска
type Model struct {
	input   textinput.Model
	manager *manager.Manager
	results []fixture.Fixture
	visible int
}

// NewModel создает экран поиска с пустым запросом
func NewModel(m *manager.Manager) *Model {
	input := textinput.New()
	input.Placeholder = "Команда или лига"
	input.Prompt = "🔎 "
	input.PromptStyle = focusedStyle
	input.CharLimit = 64
	input.Focus()

	return &Model{
		input:   input,
		manager: m,
		visible: defaultVisibleResults,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Query возвращает текущий запрос
func (m *Model) Query() string {
	return m.input.Value()
}

// Results возвращает найденные матчи
func (m *Model) Results() []fixture.Fixture {
	return m.results
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.visible = max(msg.Height-10, 1)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.input.SetValue("")
			m.results = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = m.manager.Search(m.input.Value())
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Поиск матчей"))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		b.WriteString(countStyle.Render(fmt.Sprintf("Найдено матчей: %d", len(m.results))))
		b.WriteString("\n")
		for i, f := range m.results {
			if i == m.visible {
				b.WriteString(resultStyle.Render(fmt.Sprintf("… и еще %d", len(m.results)-m.visible)))
				b.WriteString("\n")
				break
			}
			b.WriteString(resultStyle.Render(f.String()))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("Esc: очистить запрос"))
	return b.String()
}
