package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" (24h) form.
// It is stored and transferred as a plain string, which keeps the value
// timezone-naive and directly usable as a map key.
type TimeString string

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the underlying "HH:MM" value.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ErrInvalidTimeString
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ErrInvalidTimeString
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ErrInvalidTimeString
	}

	return nil
}

// Hour возвращает часовую составляющую (0-23)
func (t TimeString) Hour() int {
	if err := t.Validate(); err != nil {
		return 0
	}
	hour, _ := strconv.Atoi(strings.Split(string(t), ":")[0])
	return hour
}

// Minute возвращает минутную составляющую (0-59)
func (t TimeString) Minute() int {
	if err := t.Validate(); err != nil {
		return 0
	}
	minute, _ := strconv.Atoi(strings.Split(string(t), ":")[1])
	return minute
}

// AddMinutes возвращает время, сдвинутое на n минут вперед.
// Выход за границы суток считается ошибкой (слоты не пересекают полночь).
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Hour()*60 + t.Minute() + n
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s%+d minutes is out of day range", ErrInvalidTimeString, t, n)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
