package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не является временем вида HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (24-часовой формат)
//
// Значения сравниваются лексикографически. Для канонических (дополненных нулями)
// строк лексикографический порядок совпадает с хронологическим, поэтому все
// конструкторы приводят вход к каноническому виду.
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку вида "HH:MM" или "H:MM" (легаси формат)
// и возвращает каноническое значение с ведущими нулями
func NewTimeStringFromString(s string) (TimeString, error) {
	return TimeString(s).Canonical()
}

// Canonical возвращает значение, дополненное нулями до вида "HH:MM".
// Для непарсящихся значений возвращает ошибку ErrInvalidTimeString.
func (t TimeString) Canonical() (TimeString, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Validate проверяет, что значение является корректным временем
func (t TimeString) Validate() error {
	_, err := t.Canonical()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes возвращает время, сдвинутое на указанное число минут вперед.
// Переход через полночь считается ошибкой - рабочий день не пересекает сутки.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	canonical, err := t.Canonical()
	if err != nil {
		return "", err
	}

	parsed, err := time.Parse("15:04", string(canonical))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return NewTimeString(shifted), nil
}

// IsBefore возвращает true, если t раньше other (лексикографическое сравнение)
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t позже other (лексикографическое сравнение)
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
