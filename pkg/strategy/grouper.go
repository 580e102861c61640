// Package strategy identifies the parameter columns of a walk-forward report.
// Optimized parameter columns are named "<strategy prefix> <parameter>", e.g.
// "Smc0012 JnBarExit", and one report may carry columns from several
// strategies; the grouper picks the dominant one.
package strategy

import (
	"strconv"
	"strings"

	"github.com/quantfold/wfo-parser/internal/errors"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

// Reserved interval column names that can never be parameter columns.
const (
	BeginOOSColumn = "Begin Out-of-Sample Data Interval"
	EndOOSColumn   = "End Out-of-Sample Data Interval"
	BeginISColumn  = "Begin In-Sample Data Interval"
	EndISColumn    = "End In-Sample Data Interval"
)

// excludedPrefixes are per-run metric columns ("IS Net Profit", "OOS Trades"
// and so on), never strategy parameters.
var excludedPrefixes = []string{"IS ", "OOS "}

// Column is one parameter column decomposed into its strategy prefix and
// parameter name.
type Column struct {
	Header    string // original header, for table lookups
	Prefix    string // strategy prefix, may itself contain spaces
	Parameter string // final header token
}

// Group is the set of parameter columns selected for one strategy.
type Group struct {
	Prefix  string
	Columns []Column
}

// Decompose splits a header into (strategy prefix, parameter name) on its
// last whitespace run, so a prefix like "Smc0012 Exit" survives intact.
// ok is false for headers with no internal whitespace, which cannot
// decompose.
func Decompose(header string) (Column, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(header, "\u00a0", " "))
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Column{}, false
	}
	parameter := fields[len(fields)-1]
	prefix := strings.TrimSpace(strings.TrimSuffix(s, parameter))
	return Column{Header: header, Prefix: prefix, Parameter: parameter}, true
}

// SelectGroup partitions the table's candidate headers into strategy groups
// and returns the group with the most member columns, breaking ties by
// first-encountered prefix in header order.
//
// A header qualifies only if it is not a reserved interval column, does not
// start with a per-run metric prefix, decomposes on whitespace, and has at
// least one value that parses as numeric. Returns NoStrategyColumnsError
// when nothing qualifies.
func SelectGroup(table *tabular.Table) (*Group, error) {
	reserved := map[string]bool{
		BeginOOSColumn: true,
		EndOOSColumn:   true,
		BeginISColumn:  true,
		EndISColumn:    true,
	}

	groups := make(map[string][]Column)
	var prefixOrder []string

	for _, header := range table.Header {
		if reserved[header] || hasExcludedPrefix(header) {
			continue
		}
		col, ok := Decompose(header)
		if !ok {
			continue
		}
		values, _ := table.Column(header)
		if !anyNumeric(values) {
			continue
		}
		if _, seen := groups[col.Prefix]; !seen {
			prefixOrder = append(prefixOrder, col.Prefix)
		}
		groups[col.Prefix] = append(groups[col.Prefix], col)
	}

	if len(groups) == 0 {
		return nil, errors.NewNoStrategyColumnsError("strategy")
	}

	best := prefixOrder[0]
	for _, prefix := range prefixOrder[1:] {
		if len(groups[prefix]) > len(groups[best]) {
			best = prefix
		}
	}
	return &Group{Prefix: best, Columns: groups[best]}, nil
}

func hasExcludedPrefix(header string) bool {
	for _, p := range excludedPrefixes {
		if strings.HasPrefix(header, p) {
			return true
		}
	}
	return false
}

// anyNumeric reports whether at least one value coerces to a number.
func anyNumeric(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return true
		}
	}
	return false
}
