package domain

import (
	"time"

	"github.com/travelops/TLO-LeadService/pkg/types"
)

// ParseDateKey парсит календарную дату в формате YYYY-MM-DD
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDateKey нормализует дату в строковый ключ YYYY-MM-DD
func FormatDateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// IsSelectableDate reports whether date can be chosen for a consultation:
// it must be a weekday (Mon-Fri) that is today or later relative to now.
// Month browsing is unrestricted; this gates selection only.
func IsSelectableDate(date, now time.Time) bool {
	if IsDateInPast(date, now) {
		return false
	}
	return !IsWeekend(date)
}

// IsWeekend проверяет, что дата приходится на субботу или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня (сравнение по дням)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastSlot reports whether slot is already unusable for date.
// The cutoff is deliberately hour-granular: when date is today, a slot whose
// hour is <= the current hour counts as past even if minutes remain.
func IsPastSlot(date time.Time, slot types.TimeString, now time.Time) bool {
	if IsDateInPast(date, now) {
		return true
	}
	if !IsSameDay(date, now) {
		return false
	}
	return slot.Hour() <= now.Hour()
}

// DaysFromToday возвращает расстояние от сегодняшней даты в днях (>= 0 для
// сегодняшних и будущих дат)
func DaysFromToday(date, now time.Time) int {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(dateOnly.Sub(nowOnly).Hours() / 24)
}
