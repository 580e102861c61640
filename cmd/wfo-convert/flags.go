package main

import "flag"

// ConvertFlags holds all command line flags for the convert command
type ConvertFlags struct {
	// Input/output
	InputFile  *string
	OutputFile *string

	// Parsing options
	DateOrder *string

	// Output options
	Quiet *bool

	// Help and version
	ShowVersion *bool
}

// NewConvertFlags creates and registers all convert command line flags
func NewConvertFlags() *ConvertFlags {
	return &ConvertFlags{
		InputFile:   flag.String("in", "", "Path to the WFO report (reads stdin when empty)"),
		OutputFile:  flag.String("out", "", "Write the generated code to this file instead of stdout"),
		DateOrder:   flag.String("date-order", "auto", "Date component order (auto, dmy, mdy, ymd)"),
		Quiet:       flag.Bool("quiet", false, "Suppress the schedule summary table"),
		ShowVersion: flag.Bool("version", false, "Show version information"),
	}
}
