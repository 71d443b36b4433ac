package manager

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/hazadus/go-fixtures/internal/fixture"
)

// SortKey поле, по которому упорядочивается таблица матчей
type SortKey string

// Доступные ключи сортировки
const (
	SortByDate   SortKey = "date"
	SortByLeague SortKey = "league"
	SortByHome   SortKey = "home"
)

// SortKeys перечисляет ключи в порядке показа в меню
var SortKeys = []SortKey{SortByDate, SortByLeague, SortByHome}

// ErrUnknownSortKey возвращается для неизвестного ключа сортировки
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey разбирает ключ сортировки без учета регистра
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys {
		if k == key {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownSortKey, "%q (expected date, league or home)", s)
}

// Sorted возвращает копию матчей, упорядоченную по ключу.
// Сортировка устойчивая, равные значения упорядочиваются по дате, затем по порядку в файле.
func (m *Manager) Sorted(key SortKey) []fixture.Fixture {
	result := m.Fixtures()

	byDate := func(a, b fixture.Fixture) int {
		return a.DateTime.Compare(b.DateTime)
	}

	var cmp func(a, b fixture.Fixture) int
	switch key {
	case SortByLeague:
		cmp = func(a, b fixture.Fixture) int {
			if c := strings.Compare(strings.ToLower(a.League), strings.ToLower(b.League)); c != 0 {
				return c
			}
			return byDate(a, b)
		}
	case SortByHome:
		cmp = func(a, b fixture.Fixture) int {
			if c := strings.Compare(strings.ToLower(a.Home), strings.ToLower(b.Home)); c != 0 {
				return c
			}
			return byDate(a, b)
		}
	default:
		cmp = byDate
	}

	sort.SliceStable(result, func(i, j int) bool {
		return cmp(result[i], result[j]) < 0
	})
	return result
}
