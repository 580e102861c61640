package main

import "flag"

// EquityFlags holds all command line flags for the equity command
type EquityFlags struct {
	// Input/output
	InputFile *string
	XLSXFile  *string

	// Parsing options
	DateOrder *string

	// Output options
	ConsoleOnly *bool

	// Help and version
	ShowVersion *bool
}

// NewEquityFlags creates and registers all equity command line flags
func NewEquityFlags() *EquityFlags {
	return &EquityFlags{
		InputFile:   flag.String("in", "", "Path to the WFO report (reads stdin when empty)"),
		XLSXFile:    flag.String("xlsx", "", "Path for the Excel equity workbook (default <input>_equity.xlsx)"),
		DateOrder:   flag.String("date-order", "auto", "Date component order (auto, dmy, mdy, ymd)"),
		ConsoleOnly: flag.Bool("console-only", false, "Skip the Excel workbook"),
		ShowVersion: flag.Bool("version", false, "Show version information"),
	}
}
