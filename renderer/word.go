package renderer

import (
	"fmt"
	"html/template"
	"io"
	"regexp"
	"time"

	"github.com/etnz/biashara"
)

// WordContentType is the MIME type of the Word documents. They are HTML
// documents Word opens natively.
const WordContentType = "application/msword"

// bom makes Word read the document as UTF-8.
const bom = "﻿"

var wordTemplates = template.Must(template.New("word").Parse(`
{{- define "head" -}}
<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head><meta charset='utf-8'><title>{{.}}</title>
<style>
  body { font-family: 'Segoe UI', Tahoma, sans-serif; padding: 20px; }
  table { border-collapse: collapse; width: 100%; margin-top: 20px; }
  th, td { border: 1px solid #ccc; padding: 10px; text-align: left; font-size: 12px; }
  th { background-color: #f2f2f2; font-weight: bold; text-transform: uppercase; }
  h1 { text-align: center; color: #333; margin-bottom: 5px; }
  .meta { text-align: center; color: #666; font-size: 10px; margin-bottom: 20px; }
  .summary { background: #f9f9f9; padding: 15px; border: 1px solid #ddd; margin-bottom: 20px; }
</style>
</head><body>
{{- end}}
{{- define "table" -}}
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
{{- define "ledger" -}}
{{template "head" .Table.Title}}
<h1>{{.Table.Title}}</h1>
<div class="meta">Boutique Master Suite &bull; Generated on {{.Generated}}</div>
{{template "table" .Table}}
</body></html>
{{end}}
{{- define "report" -}}
{{template "head" "Business Report"}}
<div style="text-align: center;">
<h1>BOUTIQUE MASTER - BUSINESS REPORT</h1>
<p>Generated: {{.Generated}}</p>
</div>
<div class="summary">
<h2>Executive Summary</h2>
<p><strong>Total Revenue:</strong> {{.Stats.Revenue.Display}}</p>
<p><strong>Gross Profit:</strong> {{.Stats.GrossProfit.Display}}</p>
<p><strong>Total Expenses:</strong> {{.Stats.Expenses.Display}}</p>
<p><strong>Net Profit:</strong> {{.Stats.NetProfit.Display}}</p>
<p><strong>Inventory Valuation:</strong> {{.Stats.InventoryValue.Display}}</p>
</div>
{{range .Tables}}
<h2>{{.Title}}</h2>
{{template "table" .}}
{{end}}
</body></html>
{{end}}
`))

// WordLedger writes a ledger table as a Word document.
func WordLedger(w io.Writer, t Table, generated time.Time) error {
	data := struct {
		Table     Table
		Generated string
	}{t, generated.Format("2006-01-02 15:04")}
	return executeWord(w, "ledger", data)
}

// WordReport writes the full business report: executive summary, sales ledger and expense audit.
func WordReport(w io.Writer, s biashara.State, generated time.Time) error {
	sales, expenses := SalesTable(s), ExpensesTable(s)
	sales.Title, expenses.Title = "Sales Ledger", "Expense Audit"
	data := struct {
		Stats     biashara.Stats
		Tables    []Table
		Generated string
	}{biashara.NewStats(s), []Table{sales, expenses}, generated.Format("2006-01-02 15:04")}
	return executeWord(w, "report", data)
}

func executeWord(w io.Writer, name string, data any) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	if err := wordTemplates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("cannot render Word document: %w", err)
	}
	return nil
}

var spaces = regexp.MustCompile(`\s+`)

// WordFileName returns the download name of a document, e.g. "Boutique_Sales_Ledger_2025-03-02.doc".
func WordFileName(title string, on time.Time) string {
	return spaces.ReplaceAllString(title, "_") + "_" + on.Format("2006-01-02") + ".doc"
}
