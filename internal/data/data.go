// Package data читает и записывает JSON-файлы приложения: данные матчей и избранные команды
package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/hazadus/go-fixtures/internal/fixture"
)

// codec ведет себя как encoding/json: числа в interface{} декодируются в float64
var codec = sonic.ConfigStd

// Skip описывает пропущенную при загрузке запись
type Skip struct {
	Index int   // Порядковый номер записи в файле, с нуля
	Err   error // Причина пропуска
}

// Message возвращает сообщение о пропуске в неизменном формате
func (s Skip) Message() string {
	return "skip record #" + strconv.Itoa(s.Index) + ": " + s.Err.Error()
}

// LoadReport итог загрузки файла данных
type LoadReport struct {
	Loaded  int
	Skipped []Skip
}

// ExpandPath раскрывает тильду в начале пути
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home dir")
	}
	return strings.Replace(path, "~", home, 1), nil
}

// LoadFixtures загружает матчи из JSON-массива объектов.
// Ошибки уровня файла возвращаются, некорректные записи пропускаются и попадают в отчет.
func LoadFixtures(filePath string, logger *zap.Logger) ([]fixture.Fixture, LoadReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, err := readFile(filePath)
	if err != nil {
		return nil, LoadReport{}, err
	}

	var rows []json.RawMessage
	if err := codec.Unmarshal(raw, &rows); err != nil {
		return nil, LoadReport{}, errors.Mark(errors.Wrapf(err, "decode %s", filePath), fixture.ErrMalformedJSON)
	}

	fixtures := make([]fixture.Fixture, 0, len(rows))
	report := LoadReport{}

	for i, row := range rows {
		f, err := decodeRecord(row)
		if err != nil {
			skip := Skip{Index: i, Err: err}
			report.Skipped = append(report.Skipped, skip)
			logger.Warn(skip.Message(), zap.String("file", filePath))
			continue
		}
		fixtures = append(fixtures, f)
	}
	report.Loaded = len(fixtures)

	logger.Debug("fixtures loaded",
		zap.String("file", filePath),
		zap.Int("loaded", report.Loaded),
		zap.Int("skipped", len(report.Skipped)))

	return fixtures, report, nil
}

func decodeRecord(row []byte) (fixture.Fixture, error) {
	var rec fixture.Record
	if err := codec.Unmarshal(row, &rec); err != nil {
		return fixture.Fixture{}, errors.Mark(errors.Wrap(err, "decode record"), fixture.ErrMalformedRecord)
	}
	return rec.Fixture()
}

// LoadFavourites читает список избранных команд (JSON-массив строк)
func LoadFavourites(filePath string) ([]string, error) {
	raw, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := codec.Unmarshal(raw, &names); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s", filePath), fixture.ErrMalformedJSON)
	}
	return names, nil
}

// SaveFavourites полностью перезаписывает файл избранного.
// Имена сохраняются отсортированными, чтобы файл не менялся без причины.
func SaveFavourites(filePath string, names []string) error {
	path, err := ExpandPath(filePath)
	if err != nil {
		return errors.Mark(err, fixture.ErrIOFailure)
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	payload, err := codec.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return errors.Mark(errors.Wrap(err, "encode favourites"), fixture.ErrIOFailure)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Mark(errors.Wrapf(err, "create dir %s", dir), fixture.ErrIOFailure)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Mark(errors.Wrapf(err, "write %s", path), fixture.ErrIOFailure)
	}
	return nil
}

func readFile(filePath string) ([]byte, error) {
	path, err := ExpandPath(filePath)
	if err != nil {
		return nil, errors.Mark(err, fixture.ErrIOFailure)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "read %s", path), fixture.ErrMissingFile)
		}
		return nil, errors.Mark(errors.Wrapf(err, "read %s", path), fixture.ErrIOFailure)
	}
	return raw, nil
}
