package manager

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/data"
	"github.com/hazadus/go-fixtures/internal/fixture"
)

func favouriteKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddFavourite добавляет команду в избранное.
// Если команда встречается в матчах, сохраняется её написание из данных.
// Возвращает сохраненное имя и признак того, что команды еще не было в избранном.
func (m *Manager) AddFavourite(name string) (string, bool) {
	key := favouriteKey(name)
	if key == "" {
		return "", false
	}
	if existing, ok := m.favourites[key]; ok {
		return existing, false
	}

	canonical := m.canonicalTeamName(name)
	m.favourites[key] = canonical
	return canonical, true
}

// RemoveFavourite удаляет команду из избранного и сообщает, была ли она там
func (m *Manager) RemoveFavourite(name string) bool {
	key := favouriteKey(name)
	if _, ok := m.favourites[key]; !ok {
		return false
	}
	delete(m.favourites, key)
	return true
}

// IsFavourite проверяет, есть ли команда в избранном (без учета регистра)
func (m *Manager) IsFavourite(name string) bool {
	_, ok := m.favourites[favouriteKey(name)]
	return ok
}

// Favourites возвращает избранные команды по алфавиту
func (m *Manager) Favourites() []string {
	names := make([]string, 0, len(m.favourites))
	for _, name := range m.favourites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FavouriteFixtures возвращает матчи, где хозяева или гости в избранном, в исходном порядке
func (m *Manager) FavouriteFixtures() []fixture.Fixture {
	if len(m.favourites) == 0 {
		return nil
	}
	var result []fixture.Fixture
	for _, f := range m.fixtures {
		if m.IsFavourite(f.Home) || m.IsFavourite(f.Away) {
			result = append(result, f)
		}
	}
	return result
}

// SaveFavourites записывает избранное в файл.
// Ошибка возвращается вызывающему, состояние в памяти не меняется.
func (m *Manager) SaveFavourites(filePath string) error {
	if err := data.SaveFavourites(filePath, m.Favourites()); err != nil {
		m.logger.Warn("favourites not saved", zap.String("file", filePath), zap.Error(err))
		return err
	}
	return nil
}

// LoadFavourites заменяет избранное содержимым файла.
// Если файла нет или он поврежден, избранное становится пустым, а ошибка возвращается как предупреждение.
func (m *Manager) LoadFavourites(filePath string) error {
	names, err := data.LoadFavourites(filePath)
	m.favourites = make(map[string]string, len(names))
	if err != nil {
		if errors.Is(err, fixture.ErrMissingFile) {
			m.logger.Info("no favourites file yet", zap.String("file", filePath))
		} else {
			m.logger.Warn("favourites reset to empty", zap.String("file", filePath), zap.Error(err))
		}
		return err
	}

	for _, name := range names {
		key := favouriteKey(name)
		if key == "" {
			continue
		}
		m.favourites[key] = strings.TrimSpace(name)
	}
	return nil
}

// canonicalTeamName подбирает написание команды из загруженных матчей
func (m *Manager) canonicalTeamName(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, f := range m.fixtures {
		if strings.EqualFold(f.Home, trimmed) {
			return f.Home
		}
		if strings.EqualFold(f.Away, trimmed) {
			return f.Away
		}
	}
	return trimmed
}
