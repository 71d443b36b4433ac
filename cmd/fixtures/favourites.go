package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// createFavCommand создает группу команд fav
func (app *Application) createFavCommand() *cobra.Command {
	favCmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favourite teams",
		Long:  `Add, remove and list favourite teams. Changes are saved immediately.`,
	}

	favCmd.AddCommand(&cobra.Command{
		Use:   "add [team]",
		Short: "Add a team to favourites",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.addFavourite(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	})

	favCmd.AddCommand(&cobra.Command{
		Use:   "remove [team]",
		Short: "Remove a team from favourites",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.removeFavourite(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	})

	favCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show fixtures of favourite teams",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.showFavourites(cmd.OutOrStdout())
		},
	})

	return favCmd
}

// addFavourite добавляет команду в избранное и сразу сохраняет файл
func (app *Application) addFavourite(out io.Writer, name string) {
	saved, added := app.Manager.AddFavourite(name)
	switch {
	case saved == "":
		fmt.Fprintln(out, "❌ Название команды не может быть пустым")
		return
	case !added:
		fmt.Fprintf(out, "ℹ️  %s уже в избранном\n", saved)
		return
	}

	if err := app.SaveFavourites(); err != nil {
		fmt.Fprintf(out, "⚠️  Не удалось сохранить избранное: %v\n", err)
		return
	}
	fmt.Fprintf(out, "✅ %s добавлена в избранное\n", saved)
}

// removeFavourite удаляет команду из избранного и сразу сохраняет файл
func (app *Application) removeFavourite(out io.Writer, name string) {
	if !app.Manager.RemoveFavourite(name) {
		fmt.Fprintf(out, "❌ Команды '%s' нет в избранном\n", strings.TrimSpace(name))
		return
	}

	if err := app.SaveFavourites(); err != nil {
		fmt.Fprintf(out, "⚠️  Не удалось сохранить избранное: %v\n", err)
		return
	}
	fmt.Fprintf(out, "🗑️  %s удалена из избранного\n", strings.TrimSpace(name))
}

// showFavourites выводит избранные команды и их матчи
func (app *Application) showFavourites(out io.Writer) {
	favourites := app.Manager.Favourites()
	if len(favourites) == 0 {
		fmt.Fprintln(out, "⭐ Список избранного пуст. Добавьте команду через 'fav add' или меню.")
		return
	}

	fmt.Fprintf(out, "⭐ Избранные команды: %s\n\n", strings.Join(favourites, ", "))
	printFixtures(out, app.Manager.FavouriteFixtures())
}
