package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// runMenuWithInput запускает меню с заданным вводом и возвращает вывод
func runMenuWithInput(t *testing.T, app *Application, input string) string {
	t.Helper()

	var out bytes.Buffer
	if err := app.runMenu(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Ошибка выполнения меню: %v", err)
	}
	return out.String()
}

// TestMenuBrowseAndAddFavourite проверяет выбор лиги, команды и добавление в избранное
func TestMenuBrowseAndAddFavourite(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "1\n2\n2\ny\n3\n6\n")

	assertContains(t, output,
		"⚽ Команды лиги EPL:",
		"📅 Матчи Chelsea в EPL:",
		"[EPL] 01 Jan 2024 12:30 - Spurs vs Chelsea",
		"✅ Chelsea добавлена в избранное",
		"⭐ Избранные команды: Chelsea",
		"👋 До свидания!",
	)

	if _, err := os.Stat(app.Config.FavouritesFile); err != nil {
		t.Errorf("Файл избранного не сохранен: %v", err)
	}
}

// TestMenuBrowseByName проверяет выбор лиги и команды по названию
func TestMenuBrowseByName(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "1\nla liga\nbarcelona\nn\n6\n")

	assertContains(t, output, "📅 Матчи Barcelona в La Liga:", "Real Madrid vs Barcelona")
	if app.Manager.IsFavourite("Barcelona") {
		t.Error("Команда добавлена в избранное без подтверждения")
	}
}

// TestMenuBrowseInvalidLeague проверяет сообщение о неверной лиге
func TestMenuBrowseInvalidLeague(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "1\n9\n6\n")

	assertContains(t, output, "❌ Неверная лига")
}

// TestMenuSearch проверяет поиск из меню
func TestMenuSearch(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "2\nliga\n2\n\n6\n")

	assertContains(t, output, "🔎 Найдено матчей: 2", "Bayern vs Dortmund", "❌ Пустой запрос")
}

// TestMenuRemoveFavourite проверяет удаление команды из избранного по номеру
func TestMenuRemoveFavourite(t *testing.T) {
	app := createTestApplication(t, t.TempDir())
	app.Manager.AddFavourite("Arsenal")
	app.Manager.AddFavourite("Bayern")

	output := runMenuWithInput(t, app, "4\n1\n6\n")

	assertContains(t, output, "🗑️  Arsenal удалена из избранного")
	if app.Manager.IsFavourite("Arsenal") {
		t.Error("Команда осталась в избранном")
	}
	if !app.Manager.IsFavourite("Bayern") {
		t.Error("Удалена не та команда")
	}
}

// TestMenuRemoveFromEmpty проверяет пустой список избранного
func TestMenuRemoveFromEmpty(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "4\n6\n")

	assertContains(t, output, "⭐ Список избранного пуст")
}

// TestMenuTable проверяет таблицу с сортировкой по умолчанию и по выбору
func TestMenuTable(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "5\n\n5\nleague\n5\naway\n6\n")

	assertContains(t, output, "[date]", "ID", "Хозяева", "❌ Неизвестная сортировка")
	if strings.Count(output, "Real Madrid") != 2 {
		t.Errorf("Ожидалось две таблицы, вывод:\n%s", output)
	}
}

// TestMenuInvalidChoiceAndEOF проверяет неверный выбор и выход по концу ввода
func TestMenuInvalidChoiceAndEOF(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	output := runMenuWithInput(t, app, "9\nabc\n")

	if strings.Count(output, "❌ Неверный выбор") != 2 {
		t.Errorf("Ожидалось два сообщения о неверном выборе:\n%s", output)
	}
	assertContains(t, output, "👋 До свидания!")
}

// TestMenuSaveFailure проверяет, что ошибка сохранения не прерывает меню
func TestMenuSaveFailure(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	var out bytes.Buffer
	m := newMenu(strings.NewReader("1\nEPL\nSpurs\nда\n6\n"), &out, app.Manager, func() error {
		return errors.New("read-only filesystem")
	}, app.DefaultSortKey())
	if err := m.run(); err != nil {
		t.Fatalf("Ошибка выполнения меню: %v", err)
	}

	assertContains(t, out.String(), "⚠️  Не удалось сохранить избранное: read-only filesystem", "👋 До свидания!")
	if !app.Manager.IsFavourite("Spurs") {
		t.Error("Команда должна остаться в избранном в памяти")
	}
}

// TestPick проверяет выбор элемента по номеру и по названию
func TestPick(t *testing.T) {
	items := []string{"Bundesliga", "EPL", "La Liga"}

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"1", "Bundesliga", true},
		{"3", "La Liga", true},
		{"0", "", false},
		{"4", "", false},
		{"epl", "EPL", true},
		{"Serie A", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := pick(items, tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("pick(%q) = (%q, %v), ожидалось (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
