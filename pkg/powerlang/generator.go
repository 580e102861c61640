package powerlang

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/quantfold/wfo-parser/internal/errors"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/strategy"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

// ScheduleRow is one consolidated schedule interval with its parameter
// values. After consolidation intervals are strictly non-overlapping:
// each Start is later than the previous row's End.
type ScheduleRow struct {
	Start  time.Time
	End    time.Time
	Values map[string]string // parameter name -> raw cell value
}

// Schedule is the generated parameter schedule for one strategy.
type Schedule struct {
	StrategyPrefix string
	Parameters     []string // cleaned names, alphabetically sorted
	Rows           []ScheduleRow
	DateOrder      dates.Order
}

// Generate builds the parameter schedule from a recovered report table.
//
// The out-of-sample interval columns are parsed under one order: when
// requested is auto, inference runs jointly over the concatenation of both
// columns so start and end can never resolve differently. Rows whose start
// or end cell is empty are dropped. Rows are walked in original report
// order; a start that does not lie strictly after the previous row's end is
// moved to the day after it, while ends are never adjusted.
func Generate(table *tabular.Table, requested dates.Order) (*Schedule, error) {
	startValues, ok := table.Column(strategy.BeginOOSColumn)
	if !ok {
		return nil, errors.NewMissingColumnError("powerlang", strategy.BeginOOSColumn)
	}
	endValues, ok := table.Column(strategy.EndOOSColumn)
	if !ok {
		return nil, errors.NewMissingColumnError("powerlang", strategy.EndOOSColumn)
	}

	startSeries, err := dates.ParseSeriesJoint(startValues, endValues, requested)
	if err != nil {
		return nil, err
	}
	endSeries, err := dates.ParseSeriesJoint(endValues, nil, startSeries.Order)
	if err != nil {
		return nil, err
	}

	group, err := strategy.SelectGroup(table)
	if err != nil {
		return nil, err
	}

	cleanNames := make(map[string]string, len(group.Columns))
	for _, col := range group.Columns {
		cleanNames[col.Header] = CleanName(col.Parameter)
	}

	schedule := &Schedule{
		StrategyPrefix: group.Prefix,
		DateOrder:      startSeries.Order,
	}
	for name := range nameSet(cleanNames) {
		schedule.Parameters = append(schedule.Parameters, name)
	}
	sort.Strings(schedule.Parameters)

	var prevEnd time.Time
	havePrev := false
	for i := range table.Rows {
		if !startSeries.Valid[i] || !endSeries.Valid[i] {
			continue
		}
		start, end := startSeries.Dates[i], endSeries.Dates[i]
		if havePrev && !start.After(prevEnd) {
			start = prevEnd.AddDate(0, 0, 1)
		}

		values := make(map[string]string, len(group.Columns))
		for _, col := range group.Columns {
			idx := table.ColumnIndex(col.Header)
			values[cleanNames[col.Header]] = strings.TrimSpace(table.Rows[i][idx])
		}

		schedule.Rows = append(schedule.Rows, ScheduleRow{Start: start, End: end, Values: values})
		prevEnd = end
		havePrev = true
	}

	return schedule, nil
}

// Render emits the schedule as PowerLanguage source: the vars: declaration
// with zero defaults, then one guarded assignment block per interval.
// Output is byte-identical for identical input: parameters are declared and
// assigned alphabetically, blocks keep original row order.
func (s *Schedule) Render() string {
	var b strings.Builder

	decls := make([]string, len(s.Parameters))
	for i, name := range s.Parameters {
		decls[i] = name + "(0)"
	}
	b.WriteString("vars:\n    " + strings.Join(decls, ", ") + ";")

	for _, row := range s.Rows {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "if Date >= %s and Date <= %s then begin\n", EncodeDate(row.Start), EncodeDate(row.End))
		for _, name := range s.Parameters {
			if value, ok := row.Values[name]; ok {
				fmt.Fprintf(&b, "    %s = %s;\n", name, value)
			}
		}
		b.WriteString("end;")
	}
	return b.String()
}

// CleanName makes a parameter name usable as a script variable.
func CleanName(parameter string) string {
	return strings.ReplaceAll(strings.TrimSpace(parameter), " ", "_")
}

func nameSet(m map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for _, v := range m {
		set[v] = struct{}{}
	}
	return set
}
