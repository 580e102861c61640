package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantfold/wfo-parser/cmd/common"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/equity"
	"github.com/quantfold/wfo-parser/pkg/reporting"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

func main() {
	flags := NewEquityFlags()
	flag.Parse()

	if *flags.ShowVersion {
		common.PrintVersion("wfo-equity")
		return
	}

	raw, err := readInput(*flags.InputFile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	table, err := tabular.Extract(raw)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	curve, err := equity.BuildCurve(table, dates.ParseOrder(*flags.DateOrder))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	reporting.NewDefaultConsoleReporter().PrintEquity(curve)

	if *flags.ConsoleOnly {
		return
	}

	xlsxPath := *flags.XLSXFile
	if xlsxPath == "" {
		base := "equity"
		if *flags.InputFile != "" {
			name := filepath.Base(*flags.InputFile)
			base = strings.TrimSuffix(name, filepath.Ext(name))
		}
		xlsxPath = base + "_equity.xlsx"
	}

	if err := reporting.NewDefaultExcelReporter().WriteEquityXLSX(curve, xlsxPath); err != nil {
		log.Fatalf("❌ failed to write workbook: %v", err)
	}
	fmt.Printf("✅ Equity workbook written to %s\n", xlsxPath)
}

// readInput reads the report from a file, or stdin when no path is given.
func readInput(path string) (string, error) {
	if path == "" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}
