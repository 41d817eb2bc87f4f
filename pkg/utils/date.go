package utils

import (
	"strings"
	"time"
)

// DateLayout é o formato usado para chaves de dia
const DateLayout = "2006-01-02"

// ParseDate aceita "YYYY-MM-DD" (interpretada no fuso informado) ou RFC3339.
// dateOnly indica que o valor não trazia horário.
func ParseDate(value string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}

	if len(value) == len(DateLayout) {
		t, err = time.ParseInLocation(DateLayout, value, loc)
		return t, true, err
	}

	t, err = time.Parse(time.RFC3339, value)
	return t, false, err
}

// StartOfDay retorna 00:00 do dia de t no fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay retorna o último instante do dia de t no fuso informado
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayKeys lista os dias de start até end (inclusive), em ordem crescente
func DayKeys(start, end time.Time, loc *time.Location) []string {
	last := StartOfDay(end, loc)
	keys := []string{}

	for day := StartOfDay(start, loc); !day.After(last); day = day.AddDate(0, 0, 1) {
		keys = append(keys, day.Format(DateLayout))
	}

	return keys
}
