package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// clearEnv убирает влияние окружения разработчика на тесты
func clearEnv(t *testing.T) {
	t.Setenv(EnvFixturesFile, "")
	t.Setenv(EnvFavouritesFile, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Создаем тестовую конфигурацию
	testConfig := Config{
		FixturesFile:        "/data/fixtures.json",
		FavouritesFile:      "/data/favourites.json",
		DefaultSort:         "league",
		LogLevel:            "debug",
		AwsBucketName:       "test-bucket",
		AwsAccessKey:        "test-access-key",
		AwsSecretKey:        "test-secret-key",
		AwsRegion:           "us-east-1",
		AwsEndpoint:         "https://s3.amazonaws.com",
		RemoteFixturesKey:   "season/fixtures.json",
		RemoteFavouritesKey: "backup/favourites.json",
	}

	// Сериализуем конфигурацию в YAML
	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	// Записываем в файл
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Загружаем конфигурацию
	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что конфигурация загружена корректно
	if *loadedConfig != testConfig {
		t.Errorf("Ожидалась конфигурация %+v, получено %+v", testConfig, *loadedConfig)
	}
	if !loadedConfig.HasS3() {
		t.Error("Ожидалось, что S3 настроено")
	}
}

func TestDefaultConfig(t *testing.T) {
	clearEnv(t)

	// Создаем временный файл конфигурации с минимальными данными
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	minimalConfig := map[string]string{
		"fixtures_file": "/data/fixtures.json",
	}

	data, err := yaml.Marshal(minimalConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем значения по умолчанию
	home, _ := os.UserHomeDir()
	expectedFavourites := filepath.Join(home, ".fixtures_favourites.json")
	if loadedConfig.FavouritesFile != expectedFavourites {
		t.Errorf("Ожидался FavouritesFile по умолчанию: %s, получено: %s", expectedFavourites, loadedConfig.FavouritesFile)
	}
	if loadedConfig.DefaultSort != DefaultSort {
		t.Errorf("Ожидался DefaultSort: %s, получено: %s", DefaultSort, loadedConfig.DefaultSort)
	}
	if loadedConfig.LogLevel != DefaultLogLevel {
		t.Errorf("Ожидался LogLevel: %s, получено: %s", DefaultLogLevel, loadedConfig.LogLevel)
	}
	if loadedConfig.RemoteFixturesKey != DefaultRemoteFixturesKey {
		t.Errorf("Ожидался RemoteFixturesKey: %s, получено: %s", DefaultRemoteFixturesKey, loadedConfig.RemoteFixturesKey)
	}
	if loadedConfig.FixturesFile != "/data/fixtures.json" {
		t.Errorf("Ожидался FixturesFile: /data/fixtures.json, получено: %s", loadedConfig.FixturesFile)
	}
	if loadedConfig.HasS3() {
		t.Error("S3 не должно считаться настроенным без бакета")
	}
}

func TestEnvVarOverride(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	baseConfig := Config{
		FixturesFile:   "/from/file.json",
		FavouritesFile: "/from/favourites.json",
		LogLevel:       "error",
	}

	data, err := yaml.Marshal(baseConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	// Переменные окружения важнее файла
	t.Setenv(EnvFixturesFile, "/from/env.json")
	t.Setenv(EnvFavouritesFile, "")
	t.Setenv(EnvLogLevel, "debug")

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.FixturesFile != "/from/env.json" {
		t.Errorf("Ожидался FixturesFile из окружения: /from/env.json, получено: %s", loadedConfig.FixturesFile)
	}
	if loadedConfig.FavouritesFile != "/from/favourites.json" {
		t.Errorf("Ожидался FavouritesFile из файла: /from/favourites.json, получено: %s", loadedConfig.FavouritesFile)
	}
	if loadedConfig.LogLevel != "debug" {
		t.Errorf("Ожидался LogLevel из окружения: debug, получено: %s", loadedConfig.LogLevel)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	clearEnv(t)

	// Отсутствующий файл дает конфигурацию по умолчанию
	loadedConfig, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Неожиданная ошибка для отсутствующего файла: %v", err)
	}

	if loadedConfig.FixturesFile != DefaultFixturesFile {
		t.Errorf("Ожидался FixturesFile по умолчанию: %s, получено: %s", DefaultFixturesFile, loadedConfig.FixturesFile)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `fixtures_file: "fixtures.json"
log_level: "warn"
invalid_field: [unclosed array
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}

	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadConfigWithTilde(t *testing.T) {
	clearEnv(t)

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	testConfig := Config{
		FixturesFile:   "~/football/fixtures.json",
		FavouritesFile: "~/football/favourites.json",
	}

	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Проверяем, что тильда раскрывается корректно
	home, _ := os.UserHomeDir()
	expectedFixtures := filepath.Join(home, "football", "fixtures.json")
	if loadedConfig.FixturesFile != expectedFixtures {
		t.Errorf("Ожидался FixturesFile с раскрытой тильдой: %s, получено: %s", expectedFixtures, loadedConfig.FixturesFile)
	}
	expectedFavourites := filepath.Join(home, "football", "favourites.json")
	if loadedConfig.FavouritesFile != expectedFavourites {
		t.Errorf("Ожидался FavouritesFile с раскрытой тильдой: %s, получено: %s", expectedFavourites, loadedConfig.FavouritesFile)
	}
}
