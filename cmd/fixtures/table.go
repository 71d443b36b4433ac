package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-fixtures/internal/manager"
)

// createTableCommand создает команду table
func (app *Application) createTableCommand() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show all fixtures as a sorted table",
		Long:  `Display all fixtures as a table sorted by date, league or home team.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := app.DefaultSortKey()
			if sortBy != "" {
				parsed, err := manager.ParseSortKey(sortBy)
				if err != nil {
					return err
				}
				key = parsed
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📋 Матчи: %d, сортировка: %s\n\n", app.Manager.Len(), key)
			printFixtureTable(out, app.Manager.Sorted(key))
			return nil
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort key: date, league or home")

	return cmd
}
