package server

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/quantfold/wfo-parser/internal/errors"
	"github.com/quantfold/wfo-parser/internal/monitoring"
	"github.com/quantfold/wfo-parser/pkg/dates"
	"github.com/quantfold/wfo-parser/pkg/equity"
	"github.com/quantfold/wfo-parser/pkg/powerlang"
	"github.com/quantfold/wfo-parser/pkg/tabular"
)

// reportInput is the decoded form payload shared by both tools.
type reportInput struct {
	text     string
	filename string
	order    dates.Order
	download bool
}

// readReportInput accepts exactly one of an uploaded file or pasted text.
func (s *Server) readReportInput(r *http.Request) (*reportInput, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, fmt.Errorf("could not read the submitted form: %w", err)
	}

	in := &reportInput{
		order:    dates.ParseOrder(r.FormValue("date_order")),
		download: r.FormValue("download") == "yes",
		filename: "pasted_wfo.csv",
	}

	pasted := strings.TrimSpace(r.FormValue("wfo_text"))
	file, header, fileErr := r.FormFile("file")
	fileProvided := fileErr == nil && header != nil && header.Filename != ""

	if !fileProvided && pasted == "" {
		return nil, fmt.Errorf("please upload a report file or paste the WFO table text")
	}
	if fileProvided && pasted != "" {
		file.Close()
		return nil, fmt.Errorf("please use either upload or pasted text, not both")
	}

	if fileProvided {
		defer file.Close()
		content, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes))
		if err != nil {
			return nil, fmt.Errorf("could not read the uploaded file: %w", err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("uploaded file is empty")
		}
		in.text = string(content)
		in.filename = header.Filename
	} else {
		in.text = pasted
	}
	return in, nil
}

// handleConvert implements POST /convert: report table in, PowerLanguage out.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	in, err := s.readReportInput(r)
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err)
		return
	}

	table, err := tabular.Extract(in.text)
	if err != nil {
		s.failConversion(w, "convert", err)
		return
	}
	monitoring.RecordTableRows("convert", table.RowCount())

	schedule, err := powerlang.Generate(table, in.order)
	if err != nil {
		s.failConversion(w, "convert", err)
		return
	}
	code := schedule.Render()

	monitoring.RecordConversion("convert", "ok")
	s.health.MarkConversion()
	s.log.Convert("generated %d schedule blocks (%s, order %s) from %s",
		len(schedule.Rows), schedule.StrategyPrefix, schedule.DateOrder, in.filename)

	var downloadURL string
	if in.download {
		name := strings.TrimSuffix(path.Base(in.filename), path.Ext(in.filename)) + "_wfo.txt"
		id := s.store.Put(Download{Name: name, ContentType: "text/plain; charset=utf-8", Data: []byte(code)})
		monitoring.SetPendingDownloads(s.store.Len())
		downloadURL = "/download/" + id
	}

	s.renderPage(w, "code_result", map[string]any{
		"Code":           code,
		"DateOrderLabel": schedule.DateOrder.Label(),
		"StrategyPrefix": schedule.StrategyPrefix,
		"DownloadURL":    downloadURL,
	})
}

// handleEquity implements POST /equity/render.
func (s *Server) handleEquity(w http.ResponseWriter, r *http.Request) {
	in, err := s.readReportInput(r)
	if err != nil {
		s.renderError(w, http.StatusBadRequest, err)
		return
	}

	table, err := tabular.Extract(in.text)
	if err != nil {
		s.failConversion(w, "equity", err)
		return
	}
	monitoring.RecordTableRows("equity", table.RowCount())

	curve, err := equity.BuildCurve(table, in.order)
	if err != nil {
		s.failConversion(w, "equity", err)
		return
	}

	workbook, err := s.excel.EquityWorkbook(curve)
	if err != nil {
		s.renderError(w, http.StatusInternalServerError, err)
		return
	}

	monitoring.RecordConversion("equity", "ok")
	s.health.MarkConversion()
	s.log.Convert("built equity curve with %d points (order %s) from %s",
		len(curve.Points), curve.DateOrder, in.filename)

	name := strings.TrimSuffix(path.Base(in.filename), path.Ext(in.filename)) + "_equity.xlsx"
	id := s.store.Put(Download{
		Name:        name,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        workbook,
	})
	monitoring.SetPendingDownloads(s.store.Len())

	s.renderPage(w, "equity_result", map[string]any{
		"Points":         curve.Points,
		"DateOrderLabel": curve.DateOrder.Label(),
		"FinalEquity":    curve.FinalEquity(),
		"DownloadURL":    "/download/" + id,
	})
}

// handleDownload implements GET /download/{id}: one-shot file pickup.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, ok := s.store.Take(id)
	monitoring.SetPendingDownloads(s.store.Len())
	if !ok {
		http.Error(w, "file not found or expired", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Name))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(d.Data)
}

// failConversion records a parse failure and shows its diagnostic verbatim.
func (s *Server) failConversion(w http.ResponseWriter, tool string, err error) {
	monitoring.RecordConversion(tool, "error")
	if kind := errors.KindOf(err); kind != "" {
		monitoring.RecordParseError(string(kind))
	}
	s.health.MarkError(err.Error())
	s.log.Error("%s failed: %v", tool, err)
	s.renderError(w, http.StatusBadRequest, err)
}

func (s *Server) renderError(w http.ResponseWriter, status int, err error) {
	message := err.Error()
	if pe, ok := err.(*errors.ParseError); ok {
		message = pe.Diagnostic()
	}
	w.WriteHeader(status)
	if terr := pageTemplates.ExecuteTemplate(w, "error", message); terr != nil {
		s.log.Error("failed to render error page: %v", terr)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("failed to render %s: %v", name, err)
	}
}
