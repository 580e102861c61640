// Package reporting renders parsed report artifacts for the console and for
// Excel download.
package reporting

import (
	"github.com/quantfold/wfo-parser/pkg/equity"
	"github.com/quantfold/wfo-parser/pkg/powerlang"
)

// ConsoleReporter defines console output functionality
type ConsoleReporter interface {
	PrintSchedule(schedule *powerlang.Schedule)
	PrintEquity(curve *equity.Curve)
}

// ExcelReporter defines Excel output functionality
type ExcelReporter interface {
	WriteEquityXLSX(curve *equity.Curve, path string) error
	EquityWorkbook(curve *equity.Curve) ([]byte, error)
}
