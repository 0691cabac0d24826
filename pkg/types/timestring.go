package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout формат времени для всех времён расписания (HH:MM)
const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM".
// Хранится как текст и сравнивается лексикографически, что для
// фиксированного формата HH:MM совпадает с хронологическим порядком.
type TimeString string

// NewTimeString создает TimeString из времени суток t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time %q, expected HH:MM: %w", s, err)
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

// String возвращает представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на указанное число минут.
// Возвращает ошибку, если t не валидное значение "HH:MM".
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// Minutes возвращает время как минуты с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// On привязывает время суток к указанной календарной дате
func (t TimeString) On(date time.Time) (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// Value реализует driver.Valuer для хранения в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	return nil
}
