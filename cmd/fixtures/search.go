package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// createSearchCommand создает команду search
func (app *Application) createSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search fixtures by keyword",
		Long:  `Find fixtures whose home team, away team or league contains the keyword, ignoring case.`,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			keyword := strings.Join(args, " ")
			results := app.Manager.Search(keyword)
			fmt.Fprintf(out, "🔎 Результаты поиска '%s': %d\n", keyword, len(results))
			printFixtures(out, results)
		},
	}
}
