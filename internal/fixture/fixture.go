// Package fixture описывает запись о матче и разбор её из JSON
package fixture

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout формат даты в файле данных: YYYY-MM-DD HH:MM, 24 часа, без часового пояса
const DateLayout = "2006-01-02 15:04"

// DisplayLayout формат даты при выводе: dd Mon YYYY HH:MM
const DisplayLayout = "02 Jan 2006 15:04"

// Fixture представляет один матч между двумя командами лиги
type Fixture struct {
	MatchID  int
	League   string
	Home     string
	Away     string
	DateTime time.Time
}

// New создает матч из уже разобранных значений
func New(matchID int, league, home, away string, dateTime time.Time) Fixture {
	return Fixture{
		MatchID:  matchID,
		League:   league,
		Home:     home,
		Away:     away,
		DateTime: dateTime,
	}
}

// String возвращает строку вида "[EPL] 01 Jan 2024 15:00 - Arsenal vs Chelsea"
func (f Fixture) String() string {
	return fmt.Sprintf("[%s] %s - %s vs %s", f.League, f.DateTime.Format(DisplayLayout), f.Home, f.Away)
}

// Involves сообщает, играет ли команда в матче дома или в гостях (без учета регистра)
func (f Fixture) Involves(team string) bool {
	return strings.EqualFold(f.Home, team) || strings.EqualFold(f.Away, team)
}
