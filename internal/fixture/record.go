package fixture

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Record соответствует одному объекту в файле данных.
// Поля-указатели позволяют отличить отсутствующий ключ от пустого значения.
type Record struct {
	MatchID any     `json:"match_id" validate:"required"`
	League  *string `json:"league" validate:"required"`
	Home    *string `json:"home" validate:"required"`
	Away    *string `json:"away" validate:"required"`
	Date    *string `json:"date" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В сообщениях используем имена ключей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет наличие всех обязательных ключей
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Mark(errors.Wrap(err, "validate record"), ErrMalformedRecord)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, strconv.Quote(fe.Field()))
	}
	if len(missing) == 1 {
		return errors.Mark(errors.Newf("missing field %s", missing[0]), ErrMalformedRecord)
	}
	return errors.Mark(errors.Newf("missing fields %s", strings.Join(missing, ", ")), ErrMalformedRecord)
}

// Fixture проверяет запись и преобразует её в Fixture.
// Ошибка приведения match_id или разбора даты отбрасывает всю запись.
func (r Record) Fixture() (Fixture, error) {
	if err := r.Validate(); err != nil {
		return Fixture{}, err
	}

	matchID, err := ParseMatchID(r.MatchID)
	if err != nil {
		return Fixture{}, errors.Mark(err, ErrMalformedRecord)
	}

	dateTime, err := time.Parse(DateLayout, *r.Date)
	if err != nil {
		return Fixture{}, errors.Mark(errors.Newf("bad date %q: expected YYYY-MM-DD HH:MM", *r.Date), ErrMalformedRecord)
	}

	return New(matchID, *r.League, *r.Home, *r.Away, dateTime), nil
}

// ParseMatchID приводит значение match_id к целому.
// Допускаются строка с целым числом и целое JSON-число.
func ParseMatchID(raw any) (int, error) {
	switch v := raw.(type) {
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Newf("bad match_id %q: not an integer", v)
		}
		return id, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, errors.Newf("bad match_id %v: not an integer", v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case fmt.Stringer:
		return ParseMatchID(v.String())
	default:
		return 0, errors.Newf("bad match_id %v: unsupported type %T", raw, raw)
	}
}
