package fixture

import "github.com/cockroachdb/errors"

// Классы ошибок при работе с файлами данных.
// Конкретные ошибки помечаются ими через errors.Mark и проверяются errors.Is.
var (
	ErrMissingFile     = errors.New("file not found")
	ErrMalformedJSON   = errors.New("malformed json")
	ErrMalformedRecord = errors.New("malformed record")
	ErrIOFailure       = errors.New("io failure")
)
