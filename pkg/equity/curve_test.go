package equity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/wfo-parser/internal/errors"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

func mustExtract(t *testing.T, raw string) *tabular.Table {
	t.Helper()
	table, err := tabular.Extract(raw)
	require.NoError(t, err)
	return table
}

// TestCleanProfit tests vendor profit string coercion
func TestCleanProfit(t *testing.T) {
	assert.Equal(t, 1000.0, CleanProfit("1,000"))
	assert.Equal(t, -500.0, CleanProfit("-500"))
	assert.Equal(t, 0.0, CleanProfit("(invalid)"))
	assert.Equal(t, 0.0, CleanProfit(""))
	assert.Equal(t, 1234.56, CleanProfit("$1 234.56"))
}

// TestBuildCurve_CumulativeAndPeaks tests sorting, accumulation and peak flags
func TestBuildCurve_CumulativeAndPeaks(t *testing.T) {
	raw := "End Out-of-Sample Data Interval,OOS Net Profit\n" +
		"01/03/2021,-500\n" +
		"01/02/2021,1000\n" +
		"01/04/2021,500\n"

	curve, err := BuildCurve(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	require.Len(t, curve.Points, 3)

	// Sorted ascending by date regardless of input order.
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), curve.Points[0].Date)
	assert.Equal(t, []float64{1000, 500, 1000}, equities(curve))
	assert.Equal(t, []bool{true, false, true}, peaks(curve))
	assert.Equal(t, 1000.0, curve.FinalEquity())
	assert.Equal(t, 500.0, curve.MaxDrawdown())
}

// TestBuildCurve_PlateauPeaksAllMarked tests that equal running maxima all flag
func TestBuildCurve_PlateauPeaksAllMarked(t *testing.T) {
	raw := "End Out-of-Sample Data Interval,OOS Net Profit\n" +
		"01/02/2021,100\n" +
		"01/03/2021,0\n" +
		"01/04/2021,50\n"

	curve, err := BuildCurve(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, peaks(curve))
}

// TestBuildCurve_StableSortForEqualDates tests tie order preservation
func TestBuildCurve_StableSortForEqualDates(t *testing.T) {
	raw := "End Out-of-Sample Data Interval,OOS Net Profit\n" +
		"01/02/2021,10\n" +
		"01/02/2021,20\n"

	curve, err := BuildCurve(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, 10.0, curve.Points[0].Profit)
	assert.Equal(t, 20.0, curve.Points[1].Profit)
}

// TestBuildCurve_EmptyDateRowsDropped tests the droppable-row policy
func TestBuildCurve_EmptyDateRowsDropped(t *testing.T) {
	raw := "End Out-of-Sample Data Interval,OOS Net Profit\n" +
		"01/02/2021,100\n" +
		",999\n"

	curve, err := BuildCurve(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	require.Len(t, curve.Points, 1)
	assert.Equal(t, 100.0, curve.Points[0].Profit)
}

// TestBuildCurve_MissingColumns tests both required-column failures
func TestBuildCurve_MissingColumns(t *testing.T) {
	_, err := BuildCurve(mustExtract(t, "Date,OOS Net Profit\n01/02/2021,100\n"), dates.OrderAuto)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMissingColumn))

	_, err = BuildCurve(mustExtract(t, "End Out-of-Sample Data Interval,Profit\n01/02/2021,100\n"), dates.OrderAuto)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMissingColumn))
}

// TestBuildCurve_ResolvedOrderReported tests the resolved order label
func TestBuildCurve_ResolvedOrderReported(t *testing.T) {
	raw := "End Out-of-Sample Data Interval,OOS Net Profit\n2021-02-01,100\n"

	curve, err := BuildCurve(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, dates.OrderYearMonthDay, curve.DateOrder)
	assert.Equal(t, "YYYY/MM/DD", curve.DateOrder.Label())
}

func equities(c *Curve) []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Equity
	}
	return out
}

func peaks(c *Curve) []bool {
	out := make([]bool, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.IsPeak
	}
	return out
}
