// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/folio-extract/pkg/types"
)

// Token positions in a split print date: "05 de marzo de 2021".
const (
	dayToken   = 0
	monthToken = 2
	yearToken  = 4
	minTokens  = 5
)

// Years outside this range cannot be rendered as YYYY.
const (
	minYear = 1
	maxYear = 9999
)

// spanishMonths maps lowercase Spanish month names to calendar months.
// Read-only after package initialization.
var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// MonthByName looks up a Spanish month name, ignoring case.
func MonthByName(name string) (time.Month, bool) {
	m, ok := spanishMonths[strings.ToLower(name)]
	return m, ok
}

// ParseDate normalizes the text captured after "Impreso el". Tokens past
// the year (a time of day, for instance) are ignored.
func ParseDate(raw string) (types.CalendarDate, error) {
	parts := strings.Fields(raw)
	if len(parts) < minTokens {
		return types.CalendarDate{}, &DateParseError{
			Raw:    raw,
			Reason: "expected at least " + strconv.Itoa(minTokens) + " tokens, got " + strconv.Itoa(len(parts)),
		}
	}

	day, err := strconv.Atoi(parts[dayToken])
	if err != nil {
		return types.CalendarDate{}, &DateParseError{Raw: raw, Reason: "day is not an integer", Err: err}
	}

	month, ok := MonthByName(parts[monthToken])
	if !ok {
		return types.CalendarDate{}, &DateParseError{Raw: raw, Reason: "unknown month " + strconv.Quote(parts[monthToken])}
	}

	year, err := strconv.Atoi(parts[yearToken])
	if err != nil {
		return types.CalendarDate{}, &DateParseError{Raw: raw, Reason: "year is not an integer", Err: err}
	}
	if year < minYear || year > maxYear {
		return types.CalendarDate{}, &DateParseError{Raw: raw, Reason: "year out of range"}
	}

	// time.Date normalizes out-of-range days; a changed triple means the
	// day does not exist in that month.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != year || m != month || d != day {
		return types.CalendarDate{}, &DateParseError{Raw: raw, Reason: "day out of range for month"}
	}

	return types.CalendarDate{Year: year, Month: month, Day: day}, nil
}
