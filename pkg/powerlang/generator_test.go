package powerlang

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

// TestGenerate_EndToEnd tests the full semicolon-delimited day-first flow
func TestGenerate_EndToEnd(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval;End Out-of-Sample Data Interval;Smc1 Len\n" +
		"01/02/2021;01/03/2021;10\n" +
		"01/03/2021;01/04/2021;20\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, "Smc1", schedule.StrategyPrefix)
	assert.Equal(t, dates.OrderDayMonthYear, schedule.DateOrder)

	expected := "vars:\n" +
		"    Len(0);\n" +
		"\n" +
		"if Date >= 1210201 and Date <= 1210301 then begin\n" +
		"    Len = 10;\n" +
		"end;\n" +
		"\n" +
		"if Date >= 1210302 and Date <= 1210401 then begin\n" +
		"    Len = 20;\n" +
		"end;"
	assert.Equal(t, expected, schedule.Render())
}

// TestGenerate_OverlapRepair tests that only the lower bound is adjusted
func TestGenerate_OverlapRepair(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 Len\n" +
		"2020-01-01,2020-06-30,10\n" +
		"2020-05-01,2020-12-31,20\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, dates.OrderYearMonthDay, schedule.DateOrder)
	require.Len(t, schedule.Rows, 2)

	second := schedule.Rows[1]
	assert.Equal(t, time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC), second.Start)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), second.End)
}

// TestGenerate_TouchingIntervalsShifted tests the start <= prevEnd boundary case
func TestGenerate_TouchingIntervalsShifted(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 Len\n" +
		"2020-01-01,2020-06-30,10\n" +
		"2020-06-30,2020-12-31,20\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC), schedule.Rows[1].Start)
}

// TestGenerate_RowsWithEmptyDatesDropped tests the droppable-row policy
func TestGenerate_RowsWithEmptyDatesDropped(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 Len\n" +
		"2020-01-01,2020-06-30,10\n" +
		",2020-12-31,20\n" +
		"2021-01-01,2021-06-30,30\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	require.Len(t, schedule.Rows, 2)
	assert.Equal(t, "30", schedule.Rows[1].Values["Len"])
}

// TestGenerate_MultipleParameters tests alphabetical declaration and assignment
func TestGenerate_MultipleParameters(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 Stop,Smc1 Len\n" +
		"2020-01-01,2020-06-30,0.5,10\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"Len", "Stop"}, schedule.Parameters)

	code := schedule.Render()
	assert.Contains(t, code, "vars:\n    Len(0), Stop(0);")
	assert.Contains(t, code, "    Len = 10;\n    Stop = 0.5;\n")
}

// TestGenerate_Deterministic tests byte-identical output for identical input
func TestGenerate_Deterministic(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 B,Smc1 A,Smc1 C\n" +
		"2020-01-01,2020-06-30,1,2,3\n" +
		"2020-07-01,2020-12-31,4,5,6\n"

	first, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := Generate(mustExtract(t, raw), dates.OrderAuto)
		require.NoError(t, err)
		assert.Equal(t, first.Render(), next.Render())
	}
}

// TestGenerate_MissingIntervalColumn tests the missing-column failure
func TestGenerate_MissingIntervalColumn(t *testing.T) {
	raw := "Start,End Out-of-Sample Data Interval,Smc1 Len\n2020-01-01,2020-06-30,10\n"

	_, err := Generate(mustExtract(t, raw), dates.OrderAuto)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMissingColumn))
}

// TestGenerate_DateOverrideWins tests that a forced order bypasses inference
func TestGenerate_DateOverrideWins(t *testing.T) {
	raw := "Begin Out-of-Sample Data Interval,End Out-of-Sample Data Interval,Smc1 Len\n" +
		"01/02/2021,01/03/2021,10\n"

	schedule, err := Generate(mustExtract(t, raw), dates.OrderMonthDayYear)
	require.NoError(t, err)
	assert.Equal(t, dates.OrderMonthDayYear, schedule.DateOrder)
	assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), schedule.Rows[0].Start)
}
