package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/s3"
)

const syncTimeout = 2 * time.Minute

// createPullCommand создает команду pull для скачивания файла с матчами из S3
func (app *Application) createPullCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:         "pull",
		Short:       "Download the fixture data file from S3",
		Long:        `Download the fixture data file from the configured S3 bucket and replace the local copy.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipData: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			pullCtx, cancel := context.WithTimeout(ctx, syncTimeout)
			defer cancel()
			return app.pullFixtures(pullCtx, cmd.OutOrStdout())
		},
	}
}

// createBackupCommand создает команду backup для выгрузки избранного в S3
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:         "backup",
		Short:       "Upload the favourites file to S3",
		Long:        `Upload the local favourites file to the configured S3 bucket.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipData: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			backupCtx, cancel := context.WithTimeout(ctx, syncTimeout)
			defer cancel()
			return app.backupFavourites(backupCtx, cmd.OutOrStdout())
		},
	}
}

// s3Client возвращает клиента S3 из настроек приложения
func (app *Application) s3Client() (*s3.Client, error) {
	if app.S3 != nil {
		return app.S3, nil
	}
	if !app.Config.HasS3() {
		return nil, errors.New("S3 не настроен: укажите aws_bucket_name и aws_region в конфигурации")
	}

	client, err := s3.NewClient(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента S3")
	}
	app.S3 = client
	return client, nil
}

// pullFixtures скачивает файл с матчами во временный файл и заменяет им локальный
func (app *Application) pullFixtures(ctx context.Context, out io.Writer) error {
	client, err := app.s3Client()
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return nil
	}

	target := app.Config.FixturesFile
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", target)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".fixtures-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	fmt.Fprintf(out, "📥 Скачиваем %s\n", client.ObjectURL(app.Config.RemoteFixturesKey))
	n, err := client.Download(ctx, tmp, app.Config.RemoteFixturesKey)
	closeErr := tmp.Close()
	if err != nil {
		app.Logger.Warn("pull failed", zap.Error(err))
		fmt.Fprintf(out, "❌ Не удалось скачать файл с матчами: %v\n", err)
		return nil
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "close temp file")
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrapf(err, "replace %s", target)
	}

	report, err := app.Manager.LoadFromJSON(target)
	if err != nil {
		fmt.Fprintf(out, "⚠️  Файл скачан (%d байт), но не прочитан: %v\n", n, err)
		return nil
	}
	fmt.Fprintf(out, "✅ Файл с матчами обновлен: %s (%d байт)\n", target, n)
	fmt.Fprintf(out, "   Загружено матчей: %d, пропущено записей: %d\n", report.Loaded, len(report.Skipped))
	return nil
}

// backupFavourites выгружает файл избранного в S3
func (app *Application) backupFavourites(ctx context.Context, out io.Writer) error {
	client, err := app.s3Client()
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return nil
	}

	file, err := os.Open(app.Config.FavouritesFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "📭 Файл избранного не найден: %s\n", app.Config.FavouritesFile)
			return nil
		}
		return errors.Wrapf(err, "open %s", app.Config.FavouritesFile)
	}
	defer file.Close()

	url, err := client.Upload(ctx, file, app.Config.RemoteFavouritesKey)
	if err != nil {
		app.Logger.Warn("backup failed", zap.Error(err))
		fmt.Fprintf(out, "❌ Не удалось выгрузить избранное: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "✅ Избранное сохранено в %s\n", url)
	return nil
}
