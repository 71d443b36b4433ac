// Package browser содержит экран просмотра лиг, команд и матчей для TUI
package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-fixtures/internal/manager"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	favouriteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("46"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// level уровень вложенности экрана
type level int

const (
	leaguesLevel level = iota
	teamsLevel
	fixturesLevel
)

// item реализует интерфейс list.Item для лиги, команды или матча
type item struct {
	title     string
	favourite bool
}

func (i item) FilterValue() string {
	return i.title
}

// itemDelegate реализует отображение элементов списка
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := i.title
	if i.favourite {
		str = favouriteStyle.Render("★ ") + str
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет экран просмотра
type Model struct {
	list     list.Model
	manager  *manager.Manager
	saveFunc func() error // Функция для сохранения избранного
	level    level
	league   string
	team     string
	status   string
	quitting bool
}

// NewModel создает экран просмотра, начиная со списка лиг
func NewModel(m *manager.Manager, saveFunc func() error) *Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	model := &Model{
		list:     l,
		manager:  m,
		saveFunc: saveFunc,
	}
	model.showLeagues()
	return model
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setItems(title string, items []list.Item) tea.Cmd {
	m.list.ResetFilter()
	m.list.Title = title
	cmd := m.list.SetItems(items)
	m.list.ResetSelected()
	return cmd
}

func (m *Model) showLeagues() tea.Cmd {
	m.level = leaguesLevel
	m.league, m.team = "", ""

	leagues := m.manager.Leagues()
	items := make([]list.Item, len(leagues))
	for i, league := range leagues {
		items[i] = item{title: league}
	}
	return m.setItems("Лиги", items)
}

func (m *Model) showTeams(league string) tea.Cmd {
	m.level = teamsLevel
	m.league, m.team = league, ""

	teams := m.manager.TeamsInLeague(league)
	items := make([]list.Item, len(teams))
	for i, team := range teams {
		items[i] = item{title: team, favourite: m.manager.IsFavourite(team)}
	}
	return m.setItems("Команды: "+league, items)
}

func (m *Model) showFixtures(team string) tea.Cmd {
	m.level = fixturesLevel
	m.team = team

	fixtures := m.manager.FixturesForTeam(m.league, team)
	items := make([]list.Item, len(fixtures))
	for i, f := range fixtures {
		items[i] = item{title: f.String()}
	}

	title := "Матчи: " + team
	if m.manager.IsFavourite(team) {
		title = "★ " + title
	}
	return m.setItems(title, items)
}

// Refresh перечитывает данные текущего уровня, сохраняя позицию
func (m *Model) Refresh() {
	index := m.list.Index()
	switch m.level {
	case teamsLevel:
		m.showTeams(m.league)
	case fixturesLevel:
		m.showFixtures(m.team)
	default:
		m.showLeagues()
	}
	if index < len(m.list.Items()) {
		m.list.Select(index)
	}
}

func (m *Model) selectedTitle() (string, bool) {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		return "", false
	}
	return selected.title, true
}

// toggleFavourite добавляет или удаляет команду из избранного и сохраняет список
func (m *Model) toggleFavourite(team string) {
	if m.manager.IsFavourite(team) {
		m.manager.RemoveFavourite(team)
		m.status = "🗑️  " + team + " удалена из избранного"
	} else {
		name, _ := m.manager.AddFavourite(team)
		m.status = "⭐ " + name + " добавлена в избранное"
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(); err != nil {
			m.status = "⚠️  Не удалось сохранить избранное: " + err.Error()
		}
	}
	m.Refresh()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для статуса и справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра все клавиши обрабатывает список
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			title, ok := m.selectedTitle()
			if !ok {
				return m, nil
			}
			m.status = ""
			switch m.level {
			case leaguesLevel:
				return m, m.showTeams(title)
			case teamsLevel:
				return m, m.showFixtures(title)
			}
			return m, nil

		case "esc", "backspace":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.status = ""
			switch m.level {
			case fixturesLevel:
				return m, m.showTeams(m.league)
			case teamsLevel:
				return m, m.showLeagues()
			}
			return m, nil

		case "f":
			switch m.level {
			case teamsLevel:
				if title, ok := m.selectedTitle(); ok {
					m.toggleFavourite(title)
				}
			case fixturesLevel:
				m.toggleFavourite(m.team)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	view := m.list.View()
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}

	var extraHelp string
	switch m.level {
	case leaguesLevel:
		extraHelp = "Enter: команды лиги • q: выход"
	case teamsLevel:
		extraHelp = "Enter: матчи команды • f: избранное • Esc: к лигам • q: выход"
	default:
		extraHelp = "f: избранное • Esc: к командам • q: выход"
	}
	return view + "\n" + helpStyle.Render(extraHelp)
}
