package reporting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantfold/wfo-parser/pkg/equity"
	"github.com/xuri/excelize/v2"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

const equitySheet = "Equity"

// WriteEquityXLSX writes the equity workbook to a file
func (r *DefaultExcelReporter) WriteEquityXLSX(curve *equity.Curve, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx, err := r.buildWorkbook(curve)
	if err != nil {
		return err
	}
	defer fx.Close()
	return fx.SaveAs(path)
}

// EquityWorkbook renders the equity workbook in memory for download handoff
func (r *DefaultExcelReporter) EquityWorkbook(curve *equity.Curve) ([]byte, error) {
	fx, err := r.buildWorkbook(curve)
	if err != nil {
		return nil, err
	}
	defer fx.Close()

	var buf bytes.Buffer
	if err := fx.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// buildWorkbook creates the equity sheet and its line chart
func (r *DefaultExcelReporter) buildWorkbook(curve *equity.Curve) (*excelize.File, error) {
	fx := excelize.NewFile()
	fx.SetSheetName(fx.GetSheetName(0), equitySheet)

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Date", "OOS Net Profit", "Equity", "Peak"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(equitySheet, cell, h)
	}
	fx.SetCellStyle(equitySheet, "A1", "D1", headerStyle)

	for i, p := range curve.Points {
		row := i + 2
		fx.SetCellValue(equitySheet, fmt.Sprintf("A%d", row), p.Date.Format("2006-01-02"))
		fx.SetCellValue(equitySheet, fmt.Sprintf("B%d", row), p.Profit)
		fx.SetCellValue(equitySheet, fmt.Sprintf("C%d", row), p.Equity)
		if p.IsPeak {
			fx.SetCellValue(equitySheet, fmt.Sprintf("D%d", row), "peak")
		}
	}

	fx.SetColWidth(equitySheet, "A", "A", 14)
	fx.SetColWidth(equitySheet, "B", "C", 16)
	fx.SetColWidth(equitySheet, "D", "D", 8)

	if n := len(curve.Points); n > 0 {
		chart := &excelize.Chart{
			Type: excelize.Line,
			Series: []excelize.ChartSeries{
				{
					Name:       "Cumulative Equity",
					Categories: fmt.Sprintf("%s!$A$2:$A$%d", equitySheet, n+1),
					Values:     fmt.Sprintf("%s!$C$2:$C$%d", equitySheet, n+1),
				},
			},
			Title: []excelize.RichTextRun{
				{Text: "Walk-Forward Equity Curve (OOS Net Profit)"},
			},
			Legend: excelize.ChartLegend{Position: "none"},
		}
		if err := fx.AddChart(equitySheet, "F2", chart); err != nil {
			return nil, fmt.Errorf("failed to add equity chart: %w", err)
		}
	}

	return fx, nil
}
