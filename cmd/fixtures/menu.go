package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-fixtures/internal/manager"
	"github.com/hazadus/go-fixtures/internal/utils"
)

// Пункты главного меню
const (
	choiceBrowse     = "1"
	choiceSearch     = "2"
	choiceFavourites = "3"
	choiceRemove     = "4"
	choiceTable      = "5"
	choiceExit       = "6"
)

// menu хранит состояние интерактивного меню
type menu struct {
	in          *bufio.Scanner
	out         io.Writer
	manager     *manager.Manager
	save        func() error // Функция для сохранения избранного
	defaultSort manager.SortKey
}

func newMenu(in io.Reader, out io.Writer, m *manager.Manager, save func() error, defaultSort manager.SortKey) *menu {
	return &menu{
		in:          bufio.NewScanner(in),
		out:         out,
		manager:     m,
		save:        save,
		defaultSort: defaultSort,
	}
}

// createMenuCommand создает команду menu
func (app *Application) createMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Long:  `Start the interactive text menu for browsing leagues, searching fixtures and managing favourites.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (app *Application) runMenu(in io.Reader, out io.Writer) error {
	return newMenu(in, out, app.Manager, app.SaveFavourites, app.DefaultSortKey()).run()
}

// run показывает меню, пока пользователь не выберет выход или не закончится ввод
func (m *menu) run() error {
	fmt.Fprintln(m.out, "⚽ Добро пожаловать в программу футбольных матчей ⚽")

	for {
		m.printMainMenu()
		choice, ok := m.prompt("\nВаш выбор: ")
		if !ok {
			fmt.Fprintln(m.out, "\n👋 До свидания!")
			return m.in.Err()
		}
		if !m.dispatch(choice) {
			fmt.Fprintln(m.out, "👋 До свидания!")
			return nil
		}
	}
}

func (m *menu) printMainMenu() {
	fmt.Fprintln(m.out, "\n===== ГЛАВНОЕ МЕНЮ =====")
	fmt.Fprintln(m.out, choiceBrowse+". Лиги и команды")
	fmt.Fprintln(m.out, choiceSearch+". Поиск матчей")
	fmt.Fprintln(m.out, choiceFavourites+". Избранные команды")
	fmt.Fprintln(m.out, choiceRemove+". Удалить команду из избранного")
	fmt.Fprintln(m.out, choiceTable+". Таблица матчей")
	fmt.Fprintln(m.out, choiceExit+". Выход")
}

// dispatch выполняет пункт меню. Возвращает false, если нужно выйти.
func (m *menu) dispatch(choice string) bool {
	switch strings.TrimSpace(choice) {
	case choiceBrowse:
		m.browse()
	case choiceSearch:
		m.search()
	case choiceFavourites:
		m.favourites()
	case choiceRemove:
		m.removeFavourite()
	case choiceTable:
		m.table()
	case choiceExit:
		return false
	default:
		fmt.Fprintln(m.out, "❌ Неверный выбор. Попробуйте снова.")
	}
	return true
}

// prompt выводит приглашение и читает строку. false означает конец ввода.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// pick выбирает элемент списка по номеру или по названию без учета регистра
func pick(items []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], true
		}
		return "", false
	}
	return utils.ContainsFold(items, input)
}

func (m *menu) browse() {
	leagues := m.manager.Leagues()
	if len(leagues) == 0 {
		fmt.Fprintln(m.out, "📭 Лиги не найдены. Проверьте файл с матчами.")
		return
	}

	fmt.Fprintln(m.out, "\n🏆 Доступные лиги:")
	printNumbered(m.out, leagues)

	input, ok := m.prompt("\nВведите лигу из списка: ")
	if !ok {
		return
	}
	league, ok := pick(leagues, input)
	if !ok {
		fmt.Fprintln(m.out, "❌ Неверная лига. Попробуйте снова.")
		return
	}

	teams := m.manager.TeamsInLeague(league)
	fmt.Fprintf(m.out, "\n⚽ Команды лиги %s:\n", league)
	printNumbered(m.out, teams)

	input, ok = m.prompt("\nВведите команду из списка: ")
	if !ok {
		return
	}
	team, ok := pick(teams, input)
	if !ok {
		fmt.Fprintln(m.out, "❌ Неверная команда. Попробуйте снова.")
		return
	}

	fmt.Fprintf(m.out, "\n📅 Матчи %s в %s:\n", team, league)
	printFixtures(m.out, m.manager.FixturesForTeam(league, team))

	if m.manager.IsFavourite(team) {
		fmt.Fprintf(m.out, "⭐ %s уже в избранном\n", team)
		return
	}

	answer, ok := m.prompt(fmt.Sprintf("\nДобавить %s в избранное? (y/n): ", team))
	if !ok || !isYes(answer) {
		return
	}
	saved, _ := m.manager.AddFavourite(team)
	if m.persist() {
		fmt.Fprintf(m.out, "✅ %s добавлена в избранное\n", saved)
	}
}

func (m *menu) search() {
	keyword, ok := m.prompt("\nВведите слово для поиска: ")
	if !ok {
		return
	}
	if keyword == "" {
		fmt.Fprintln(m.out, "❌ Пустой запрос")
		return
	}

	results := m.manager.Search(keyword)
	fmt.Fprintf(m.out, "\n🔎 Найдено матчей: %d\n", len(results))
	printFixtures(m.out, results)
}

func (m *menu) favourites() {
	names := m.manager.Favourites()
	if len(names) == 0 {
		fmt.Fprintln(m.out, "\n⭐ Список избранного пуст")
		return
	}

	fmt.Fprintf(m.out, "\n⭐ Избранные команды: %s\n\n", strings.Join(names, ", "))
	printFixtures(m.out, m.manager.FavouriteFixtures())
}

func (m *menu) removeFavourite() {
	names := m.manager.Favourites()
	if len(names) == 0 {
		fmt.Fprintln(m.out, "\n⭐ Список избранного пуст")
		return
	}

	fmt.Fprintln(m.out, "\n⭐ Избранные команды:")
	printNumbered(m.out, names)

	input, ok := m.prompt("\nВведите команду для удаления: ")
	if !ok {
		return
	}
	name, ok := pick(names, input)
	if !ok || !m.manager.RemoveFavourite(name) {
		fmt.Fprintln(m.out, "❌ Такой команды нет в избранном")
		return
	}
	if m.persist() {
		fmt.Fprintf(m.out, "🗑️  %s удалена из избранного\n", name)
	}
}

func (m *menu) table() {
	label := fmt.Sprintf("\nСортировать по (date/league/home) [%s]: ", m.defaultSort)
	input, ok := m.prompt(label)
	if !ok {
		return
	}

	key := m.defaultSort
	if input != "" {
		parsed, err := manager.ParseSortKey(input)
		if err != nil {
			fmt.Fprintln(m.out, "❌ Неизвестная сортировка. Используйте date, league или home.")
			return
		}
		key = parsed
	}

	fmt.Fprintln(m.out)
	printFixtureTable(m.out, m.manager.Sorted(key))
}

// persist сохраняет избранное после изменения. Ошибка только выводится.
func (m *menu) persist() bool {
	if m.save == nil {
		return true
	}
	if err := m.save(); err != nil {
		fmt.Fprintf(m.out, "⚠️  Не удалось сохранить избранное: %v\n", err)
		return false
	}
	return true
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
