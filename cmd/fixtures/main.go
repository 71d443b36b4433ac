package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/config"
	"github.com/hazadus/go-fixtures/internal/fixture"
	"github.com/hazadus/go-fixtures/internal/logging"
	"github.com/hazadus/go-fixtures/internal/manager"
	"github.com/hazadus/go-fixtures/internal/s3"
)

const (
	defaultConfigPath = "~/.fixtures.yaml"
)

// Application хранит состояние приложения, общее для всех команд
type Application struct {
	Config  *config.Config
	Manager *manager.Manager
	Logger  *zap.Logger
	S3      *s3.Client // Создается при первом обращении к S3
}

// NewApplication загружает конфигурацию и создает пустой менеджер матчей
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	return &Application{
		Config:  cfg,
		Manager: manager.New(logger),
		Logger:  logger,
	}, nil
}

// LoadData загружает матчи и избранное. Ошибки не прерывают работу.
func (app *Application) LoadData() {
	report, err := app.Manager.LoadFromJSON(app.Config.FixturesFile)
	switch {
	case errors.Is(err, fixture.ErrMissingFile):
		fmt.Printf("⚠️  Файл с матчами не найден: %s\n", app.Config.FixturesFile)
	case errors.Is(err, fixture.ErrMalformedJSON):
		fmt.Printf("⚠️  Файл с матчами поврежден: %s\n", app.Config.FixturesFile)
	case err != nil:
		fmt.Printf("⚠️  Не удалось прочитать матчи: %v\n", err)
	case len(report.Skipped) > 0:
		fmt.Printf("⚠️  Пропущено некорректных записей: %d\n", len(report.Skipped))
	}

	err = app.Manager.LoadFavourites(app.Config.FavouritesFile)
	if err != nil && !errors.Is(err, fixture.ErrMissingFile) {
		fmt.Printf("⚠️  Избранное не загружено, начинаем с пустого списка: %v\n", err)
	}
}

// SaveFavourites сохраняет избранное в файл из конфигурации
func (app *Application) SaveFavourites() error {
	return app.Manager.SaveFavourites(app.Config.FavouritesFile)
}

// DefaultSortKey возвращает сортировку таблицы из конфигурации
func (app *Application) DefaultSortKey() manager.SortKey {
	key, err := manager.ParseSortKey(app.Config.DefaultSort)
	if err != nil {
		return manager.SortByDate
	}
	return key
}

func main() {
	rootCmd := createRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
