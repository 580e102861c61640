package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/quantfold/wfo-parser/cmd/common"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/powerlang"
	"github.com/quantfold/wfo-parser/pkg/reporting"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

func main() {
	flags := NewConvertFlags()
	flag.Parse()

	if *flags.ShowVersion {
		common.PrintVersion("wfo-convert")
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

	schedule, err := powerlang.Generate(table, dates.ParseOrder(*flags.DateOrder))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	code := schedule.Render()

	if !*flags.Quiet {
		reporting.NewDefaultConsoleReporter().PrintSchedule(schedule)
	}

	if *flags.OutputFile != "" {
		if err := os.WriteFile(*flags.OutputFile, []byte(code+"\n"), 0644); err != nil {
			log.Fatalf("❌ failed to write %s: %v", *flags.OutputFile, err)
		}
		fmt.Printf("✅ PowerLanguage code written to %s\n", *flags.OutputFile)
		return
	}
	fmt.Println(code)
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
