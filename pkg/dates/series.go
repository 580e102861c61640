package dates

import (
	"fmt"
	"time"

	"github.com/quantfold/wfo-parser/internal/errors"
)

// Series is the result of one strict parse pass over a date column.
// Dates and Valid are indexed by row. Valid is false only for cells that
// were empty after normalization; such rows carry no date and the caller
// decides whether to drop or report them. Any non-empty cell that cannot
// be parsed fails the whole pass instead.
type Series struct {
	Dates []time.Time
	Valid []bool
	Order Order
}

// ParseSeries parses a whole column of raw date strings under one ordering.
//
// With OrderAuto the ordering is inferred once from the entire column via
// InferOrder; an explicit order bypasses inference entirely. The resolved
// order then applies to every token. Returns a DateParseError naming the
// offending raw value on the first token that is not a valid calendar date
// under that order.
func ParseSeries(values []string, requested Order) (*Series, error) {
	return ParseSeriesJoint(values, nil, requested)
}

// ParseSeriesJoint parses values like ParseSeries, but when the order is
// auto it infers from the concatenation of values and extra. Used when two
// columns (interval start and end) must resolve to one consistent order
// from the largest evidence pool.
func ParseSeriesJoint(values, extra []string, requested Order) (*Series, error) {
	resolved := requested
	if resolved == OrderAuto || resolved == "" {
		pool := make([]string, 0, len(values)+len(extra))
		pool = append(pool, values...)
		pool = append(pool, extra...)
		resolved = InferOrder(pool)
	}

	series := &Series{
		Dates: make([]time.Time, len(values)),
		Valid: make([]bool, len(values)),
		Order: resolved,
	}
	for i, raw := range values {
		token := NormalizeToken(raw)
		if token == "" {
			continue
		}
		parsed, err := parseToken(token, resolved)
		if err != nil {
			return nil, errors.NewDateParseError("dates", raw, err)
		}
		series.Dates[i] = parsed
		series.Valid[i] = true
	}
	return series, nil
}

// parseToken parses one normalized token under a fixed component order.
func parseToken(token string, order Order) (time.Time, error) {
	a, b, c, ok := splitComponents(token)
	if !ok {
		return time.Time{}, fmt.Errorf("token %q does not have three numeric components", token)
	}

	var year, month, day int
	switch order {
	case OrderYearMonthDay:
		year, month, day = a, b, c
	case OrderMonthDayYear:
		month, day, year = a, b, c
	default:
		day, month, year = a, b, c
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range under %s order", month, order)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day %d out of range under %s order", day, order)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject it.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("no such calendar date: %04d-%02d-%02d", year, month, day)
	}
	return t, nil
}
