package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-fixtures/internal/utils"
)

// createLeaguesCommand создает команду leagues
func (app *Application) createLeaguesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List all leagues",
		Long:  `Display the distinct league names found in the fixture file, sorted alphabetically.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			leagues := app.Manager.Leagues()
			if len(leagues) == 0 {
				fmt.Fprintln(out, "📭 Лиги не найдены. Проверьте файл с матчами.")
				return
			}
			fmt.Fprintf(out, "🏆 Доступные лиги (%d):\n", len(leagues))
			printNumbered(out, leagues)
		},
	}
}

// createTeamsCommand создает команду teams
func (app *Application) createTeamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "teams [league]",
		Short: "List teams of a league",
		Long:  `Display every team playing home or away in the league. The league name is case-insensitive.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			teams := app.Manager.TeamsInLeague(args[0])
			if len(teams) == 0 {
				fmt.Fprintf(out, "❌ Лига '%s' не найдена\n", args[0])
				return
			}
			fmt.Fprintf(out, "⚽ Команды лиги %s:\n", args[0])
			for _, team := range teams {
				marker := " "
				if app.Manager.IsFavourite(team) {
					marker = "★"
				}
				fmt.Fprintf(out, "%s %s\n", marker, team)
			}
		},
	}
}

// createTeamCommand создает команду team
func (app *Application) createTeamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "team [league] [team]",
		Short: "Show fixtures of a team in a league",
		Long:  `Display the fixtures where the team plays home or away in the league, in file order.`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			league, team := args[0], args[1]

			if _, ok := utils.ContainsFold(app.Manager.Leagues(), league); !ok {
				fmt.Fprintf(out, "❌ Лига '%s' не найдена\n", league)
				return
			}

			fmt.Fprintf(out, "📅 Матчи %s в %s:\n", team, league)
			printFixtures(out, app.Manager.FixturesForTeam(league, team))
		},
	}
}
