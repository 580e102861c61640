package server

import "html/template"

// Page templates mirror the original single-page tools: a launcher, one
// form per tool, and a result view with copy/download actions.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "layout_head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.}}</title>
<style>
  body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
         background: #f9fafb; margin: 0; display: flex; justify-content: center;
         align-items: flex-start; padding-top: 8vh; }
  .card { width: 100%; max-width: 1000px; background: white; border: 1px solid #e5e7eb;
          border-radius: 12px; box-shadow: 0 4px 20px rgba(0,0,0,0.08); padding: 2.5rem; }
  textarea { width: 100%; height: 300px; padding: 0.75rem; font-family: monospace;
             border-radius: 8px; border: 1px solid #d1d5db; background: #f9fafb;
             box-sizing: border-box; white-space: pre; }
  button, .btn { background: black; color: white; border: 0; padding: 0.75rem 1.25rem;
                 border-radius: 8px; cursor: pointer; text-decoration: none; display: inline-block; }
  .btn.download { background: #2563eb; }
  .hint { color: #6b7280; font-size: 0.9rem; }
  .error { color: #b91c1c; }
  table.equity { border-collapse: collapse; margin: 1rem auto; }
  table.equity th, table.equity td { border: 1px solid #e5e7eb; padding: 0.35rem 0.75rem;
                                     font-size: 0.9rem; text-align: right; }
  table.equity th { background: #f3f4f6; }
</style>
</head>
<body><div class="card">{{end}}

{{define "layout_foot"}}</div></body></html>{{end}}

{{define "launcher"}}{{template "layout_head" "WFO Tools"}}
<h1>WFO Tools</h1>
<p class="hint">Choose a tool. Most people start with the equity curve.</p>
<p><a class="btn" href="/equity">Tool 1: Equity Curve Viewer</a>
   <a class="btn" style="background:#374151" href="/wfo">Tool 2: WFO Parser</a></p>
{{template "layout_foot"}}{{end}}

{{define "wfo_form"}}{{template "layout_head" "WFO Parser"}}
<h1>WFO Parser</h1>
<p class="hint">Upload a walk-forward report or paste its table to generate PowerLanguage code.</p>
<form method="post" action="/convert" enctype="multipart/form-data">
  <p><input type="file" name="file" accept=".csv,.txt" /></p>
  <p><textarea name="wfo_text" placeholder="...or paste the WFO table here (tab-delimited is fine)"></textarea></p>
  <p>
    <label>Date order:
      <select name="date_order">
        <option value="auto" selected>Auto-detect</option>
        <option value="dmy">DD/MM/YYYY</option>
        <option value="mdy">MM/DD/YYYY</option>
        <option value="ymd">YYYY/MM/DD</option>
      </select>
    </label>
    <label><input type="checkbox" name="download" value="yes" /> Also download .txt file</label>
  </p>
  <p><button type="submit">Convert</button></p>
</form>
<p class="hint">Your data is processed in memory and not stored on the server.</p>
{{template "layout_foot"}}{{end}}

{{define "equity_form"}}{{template "layout_head" "Equity Curve Viewer"}}
<h1>Equity Curve Viewer</h1>
<p class="hint">Upload a walk-forward report or paste its table to chart cumulative OOS equity.</p>
<form method="post" action="/equity/render" enctype="multipart/form-data">
  <p><input type="file" name="file" accept=".csv,.txt" /></p>
  <p><textarea name="wfo_text" placeholder="...or paste the WFO table here"></textarea></p>
  <p>
    <label>Date order:
      <select name="date_order">
        <option value="auto" selected>Auto-detect</option>
        <option value="dmy">DD/MM/YYYY</option>
        <option value="mdy">MM/DD/YYYY</option>
        <option value="ymd">YYYY/MM/DD</option>
      </select>
    </label>
  </p>
  <p><button type="submit">Draw</button></p>
</form>
{{template "layout_foot"}}{{end}}

{{define "code_result"}}{{template "layout_head" "WFO Parser Result"}}
<h2>Generated PowerLanguage Code</h2>
<p class="hint">🕒 Detected date order: {{.DateOrderLabel}} | Strategy: {{.StrategyPrefix}}</p>
<textarea readonly>{{.Code}}</textarea>
<p>
  {{if .DownloadURL}}<a class="btn download" href="{{.DownloadURL}}">⬇️ Download .txt File</a>{{end}}
  <a class="btn" style="background:#e5e7eb;color:#111827" href="/wfo">← Back</a>
</p>
{{template "layout_foot"}}{{end}}

{{define "equity_result"}}{{template "layout_head" "Equity Curve"}}
<h2>Walk-Forward Equity Curve</h2>
<p class="hint">🕒 Detected date order: {{.DateOrderLabel}} | Final equity: {{printf "%.2f" .FinalEquity}}</p>
<table class="equity">
<tr><th>Date</th><th>OOS Net Profit</th><th>Equity</th><th>Peak</th></tr>
{{range .Points}}<tr><td>{{.Date.Format "2006-01-02"}}</td><td>{{printf "%.2f" .Profit}}</td><td>{{printf "%.2f" .Equity}}</td><td>{{if .IsPeak}}▲{{end}}</td></tr>
{{end}}
</table>
<p>
  <a class="btn download" href="{{.DownloadURL}}">⬇️ Download Excel Chart</a>
  <a class="btn" style="background:#e5e7eb;color:#111827" href="/equity">← Back</a>
</p>
{{template "layout_foot"}}{{end}}

{{define "error"}}{{template "layout_head" "Error"}}
<h3 class="error">Error: {{.}}</h3>
<p><a class="btn" href="/">← Back</a></p>
{{template "layout_foot"}}{{end}}
`))
