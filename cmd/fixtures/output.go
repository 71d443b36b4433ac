package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/utils"
)

// printFixtures выводит матчи построчно в формате Fixture.String
func printFixtures(w io.Writer, fixtures []fixture.Fixture) {
	if len(fixtures) == 0 {
		fmt.Fprintln(w, "📭 Матчей не найдено")
		return
	}
	for _, f := range fixtures {
		fmt.Fprintln(w, f.String())
	}
}

// printFixtureTable выводит матчи таблицей
func printFixtureTable(w io.Writer, fixtures []fixture.Fixture) {
	if len(fixtures) == 0 {
		fmt.Fprintln(w, "📭 Матчей не найдено")
		return
	}

	fmt.Fprintf(w, "%-6s %-17s %-16s %-22s %-22s\n", "ID", "Дата", "Лига", "Хозяева", "Гости")
	fmt.Fprintln(w, strings.Repeat("-", 87))

	for _, f := range fixtures {
		fmt.Fprintf(w, "%-6d %-17s %-16s %-22s %-22s\n",
			f.MatchID,
			f.DateTime.Format(fixture.DisplayLayout),
			utils.TruncateString(f.League, 16),
			utils.TruncateString(f.Home, 22),
			utils.TruncateString(f.Away, 22))
	}
}

// printNumbered выводит нумерованный список, начиная с 1
func printNumbered(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
}
