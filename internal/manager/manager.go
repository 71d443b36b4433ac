// Package manager содержит логику работы с коллекцией матчей и избранными командами
package manager

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/data"
	"github.com/hazadus/go-fixtures/internal/fixture"
)

// Manager хранит матчи в порядке файла и множество избранных команд.
// Не предназначен для одновременного использования из нескольких горутин.
type Manager struct {
	fixtures   []fixture.Fixture
	favourites map[string]string // ключ в нижнем регистре -> имя для отображения
	logger     *zap.Logger
}

// New создает пустой Manager
func New(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		fixtures:   make([]fixture.Fixture, 0),
		favourites: make(map[string]string),
		logger:     logger,
	}
}

// Add добавляет матч в конец коллекции
func (m *Manager) Add(f fixture.Fixture) {
	m.fixtures = append(m.fixtures, f)
}

// LoadFromJSON загружает матчи из файла данных.
// При ошибке уровня файла коллекция не меняется, ошибка логируется и возвращается.
func (m *Manager) LoadFromJSON(filePath string) (data.LoadReport, error) {
	loaded, report, err := data.LoadFixtures(filePath, m.logger)
	if err != nil {
		m.logger.Warn("fixtures not loaded", zap.String("file", filePath), zap.Error(err))
		return report, err
	}
	m.fixtures = append(m.fixtures, loaded...)
	return report, nil
}

// Len возвращает количество матчей
func (m *Manager) Len() int {
	return len(m.fixtures)
}

// Fixtures возвращает копию всех матчей в порядке файла
func (m *Manager) Fixtures() []fixture.Fixture {
	return append([]fixture.Fixture(nil), m.fixtures...)
}

// Leagues возвращает названия лиг без повторов в алфавитном порядке
func (m *Manager) Leagues() []string {
	seen := make(map[string]struct{})
	for _, f := range m.fixtures {
		seen[f.League] = struct{}{}
	}
	return sortedKeys(seen)
}

// TeamsInLeague возвращает команды лиги (хозяева и гости) без повторов, по алфавиту.
// Лига сравнивается без учета регистра.
func (m *Manager) TeamsInLeague(league string) []string {
	seen := make(map[string]struct{})
	for _, f := range m.fixtures {
		if strings.EqualFold(f.League, league) {
			seen[f.Home] = struct{}{}
			seen[f.Away] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// FixturesForTeam возвращает матчи команды в лиге в исходном порядке.
// Лига и команда сравниваются без учета регистра.
func (m *Manager) FixturesForTeam(league, team string) []fixture.Fixture {
	var result []fixture.Fixture
	for _, f := range m.fixtures {
		if strings.EqualFold(f.League, league) && f.Involves(team) {
			result = append(result, f)
		}
	}
	return result
}

// Search ищет подстроку в названиях команд и лиги без учета регистра.
// Пустой запрос ничего не находит.
func (m *Manager) Search(keyword string) []fixture.Fixture {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	var result []fixture.Fixture
	for _, f := range m.fixtures {
		if strings.Contains(strings.ToLower(f.Home), needle) ||
			strings.Contains(strings.ToLower(f.Away), needle) ||
			strings.Contains(strings.ToLower(f.League), needle) {
			result = append(result, f)
		}
	}
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
