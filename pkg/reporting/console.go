package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/quantfold/wfo-parser/pkg/equity"
	"github.com/quantfold/wfo-parser/pkg/powerlang"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// PrintSchedule prints a summary table of the generated parameter schedule
func (r *DefaultConsoleReporter) PrintSchedule(schedule *powerlang.Schedule) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("PARAMETER SCHEDULE - %s", schedule.StrategyPrefix)
	t.SetStyle(table.StyleRounded)

	header := table.Row{"#", "Start", "End"}
	for _, name := range schedule.Parameters {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i, row := range schedule.Rows {
		cells := table.Row{i + 1, row.Start.Format("2006-01-02"), row.End.Format("2006-01-02")}
		for _, name := range schedule.Parameters {
			cells = append(cells, row.Values[name])
		}
		t.AppendRow(cells)
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	t.Render()
	fmt.Printf("🕒 Date order: %s | %d interval(s)\n", schedule.DateOrder.Label(), len(schedule.Rows))
}

// PrintEquity prints the cumulative equity series with peak markers
func (r *DefaultConsoleReporter) PrintEquity(curve *equity.Curve) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("WALK-FORWARD EQUITY CURVE")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Date", "OOS Profit", "Equity", "Peak"})

	for _, p := range curve.Points {
		peak := ""
		if p.IsPeak {
			peak = "▲"
		}
		t.AppendRow(table.Row{
			p.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", p.Profit),
			fmt.Sprintf("%.2f", p.Equity),
			peak,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignCenter},
	})
	t.Render()
	fmt.Printf("🕒 Date order: %s | Final equity: %.2f | Max drawdown: %.2f\n",
		curve.DateOrder.Label(), curve.FinalEquity(), curve.MaxDrawdown())
}
