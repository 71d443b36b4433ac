package main

import (
	"context"

	"github.com/spf13/cobra"
)

// annotationSkipData помечает команды, которым не нужны загруженные матчи
const annotationSkipData = "skip-data"

// createRootCommand создает корневую команду с настроенными подкомандами.
// Приложение создается перед запуском любой подкоманды.
func createRootCommand() *cobra.Command {
	app := &Application{}
	ctx := context.Background()
	configPath := defaultConfigPath

	rootCmd := &cobra.Command{
		Use:          "fixtures",
		Short:        "Browse football fixtures and track favourite teams",
		Long:         `A command line tool to browse, search and sort football fixtures loaded from a JSON file and keep a list of favourite teams.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := NewApplication(configPath)
			if err != nil {
				return err
			}
			*app = *loaded
			if cmd.Annotations[annotationSkipData] == "" {
				app.LoadData()
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")

	app.registerCommands(ctx, rootCmd)
	return rootCmd
}

// registerCommands добавляет подкоманды, передавая в них экземпляр приложения и контекст
func (app *Application) registerCommands(ctx context.Context, rootCmd *cobra.Command) {
	rootCmd.AddCommand(app.createMenuCommand())
	rootCmd.AddCommand(app.createLeaguesCommand())
	rootCmd.AddCommand(app.createTeamsCommand())
	rootCmd.AddCommand(app.createTeamCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createFavCommand())
	rootCmd.AddCommand(app.createTableCommand())
	rootCmd.AddCommand(app.createPullCommand(ctx))
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())
}
