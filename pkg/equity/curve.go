// Package equity computes the cumulative out-of-sample equity curve of a
// walk-forward report for charting.
package equity

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quantfold/wfo-parser/internal/errors"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/strategy"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

// ProfitColumn is the per-run out-of-sample profit column of the report.
const ProfitColumn = "OOS Net Profit"

// Point is one point of the cumulative equity series. IsPeak marks every
// point whose equity equals the running maximum, so plateaued maxima are
// all flagged, not only the first.
type Point struct {
	Date   time.Time
	Profit float64
	Equity float64
	IsPeak bool
}

// Curve is the date-sorted cumulative equity series.
type Curve struct {
	Points    []Point
	DateOrder dates.Order
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// BuildCurve parses the interval-end dates and profit values of the table,
// sorts by date and accumulates the equity series. Rows with an empty date
// cell are dropped; rows with equal dates keep their original relative
// order. Profit values are cleaned of thousands separators and any other
// non-numeric residue, and an emptied value counts as zero.
func BuildCurve(table *tabular.Table, requested dates.Order) (*Curve, error) {
	dateValues, ok := table.Column(strategy.EndOOSColumn)
	if !ok {
		return nil, errors.NewMissingColumnError("equity", strategy.EndOOSColumn)
	}
	profitValues, ok := table.Column(ProfitColumn)
	if !ok {
		return nil, errors.NewMissingColumnError("equity", ProfitColumn)
	}

	series, err := dates.ParseSeries(dateValues, requested)
	if err != nil {
		return nil, err
	}

	curve := &Curve{DateOrder: series.Order}
	for i := range table.Rows {
		if !series.Valid[i] {
			continue
		}
		curve.Points = append(curve.Points, Point{
			Date:   series.Dates[i],
			Profit: CleanProfit(profitValues[i]),
		})
	}

	sort.SliceStable(curve.Points, func(a, b int) bool {
		return curve.Points[a].Date.Before(curve.Points[b].Date)
	})

	equity, runningMax := 0.0, 0.0
	for i := range curve.Points {
		equity += curve.Points[i].Profit
		if i == 0 || equity > runningMax {
			runningMax = equity
		}
		curve.Points[i].Equity = equity
		curve.Points[i].IsPeak = equity == runningMax
	}
	return curve, nil
}

// MaxDrawdown returns the deepest peak-to-trough equity decline.
func (c *Curve) MaxDrawdown() float64 {
	maxDD, peak := 0.0, 0.0
	for i, p := range c.Points {
		if i == 0 || p.Equity > peak {
			peak = p.Equity
		}
		if dd := peak - p.Equity; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// FinalEquity returns the last cumulative value, or zero for an empty curve.
func (c *Curve) FinalEquity() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[len(c.Points)-1].Equity
}

// CleanProfit coerces a vendor-formatted profit string to a number.
// Thousands separators, embedded spaces and currency residue are stripped;
// a value with nothing numeric left counts as zero.
func CleanProfit(raw string) float64 {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
