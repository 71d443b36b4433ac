// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultFixturesFile        = "fixturedata.json"
	DefaultFavouritesFile      = "~/.fixtures_favourites.json"
	DefaultSort                = "date"
	DefaultLogLevel            = "warn"
	DefaultRemoteFixturesKey   = "fixturedata.json"
	DefaultRemoteFavouritesKey = "favourites.json"
)

// Переменные окружения, которые имеют приоритет над файлом конфигурации
const (
	EnvFixturesFile   = "FIXTURES_FILE"
	EnvFavouritesFile = "FIXTURES_FAVOURITES_FILE"
	EnvLogLevel       = "FIXTURES_LOG_LEVEL"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	FixturesFile        string `yaml:"fixtures_file"`
	FavouritesFile      string `yaml:"favourites_file"`
	DefaultSort         string `yaml:"default_sort"`
	LogLevel            string `yaml:"log_level"`
	AwsBucketName       string `yaml:"aws_bucket_name"`
	AwsAccessKey        string `yaml:"aws_access_key"`
	AwsSecretKey        string `yaml:"aws_secret_key"`
	AwsRegion           string `yaml:"aws_region"`
	AwsEndpoint         string `yaml:"aws_endpoint"`
	RemoteFixturesKey   string `yaml:"remote_fixtures_key"`
	RemoteFavouritesKey string `yaml:"remote_favourites_key"`
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
// Перед чтением переменных окружения подгружается .env из текущей директории.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err):
		// Работаем без файла конфигурации
	default:
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	// .env не обязателен, уже заданные переменные окружения он не перекрывает
	_ = godotenv.Load()
	config.applyEnv()

	// Устанавливаем значения по умолчанию, если они не заданы
	config.applyDefaults()

	// Раскрываем тильду в путях к файлам данных
	config.FixturesFile = strings.Replace(config.FixturesFile, "~", home, 1)
	config.FavouritesFile = strings.Replace(config.FavouritesFile, "~", home, 1)

	return config, nil
}

// HasS3 сообщает, настроено ли хранилище S3
func (c *Config) HasS3() bool {
	return c.AwsBucketName != "" && c.AwsRegion != ""
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvFixturesFile); v != "" {
		c.FixturesFile = v
	}
	if v := os.Getenv(EnvFavouritesFile); v != "" {
		c.FavouritesFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) applyDefaults() {
	if c.FixturesFile == "" {
		c.FixturesFile = DefaultFixturesFile
	}
	if c.FavouritesFile == "" {
		c.FavouritesFile = DefaultFavouritesFile
	}
	if c.DefaultSort == "" {
		c.DefaultSort = DefaultSort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.RemoteFixturesKey == "" {
		c.RemoteFixturesKey = DefaultRemoteFixturesKey
	}
	if c.RemoteFavouritesKey == "" {
		c.RemoteFavouritesKey = DefaultRemoteFavouritesKey
	}
}
