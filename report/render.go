// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
)

// RenderText writes a plain-text report: title, summary, the ratings
// matrix with a totals row, and recommendations for the top option.
func RenderText(w io.Writer, view models.DecisionView, tr *i18n.Translator) error {
	var b strings.Builder

	d := view.Decision
	b.WriteString(d.Title + "\n")
	if d.Description != "" {
		b.WriteString(d.Description + "\n")
	}
	if !d.CreatedAt.IsZero() {
		b.WriteString(humanize.Time(d.CreatedAt) + "\n")
	}
	b.WriteString("\n" + view.Summary + "\n\n")

	b.WriteString(tr.T("detailedBreakdown") + "\n")
	writeTable(&b, matrixCells(view.Matrix, tr))

	if rec := view.Recommendations; rec != nil {
		b.WriteString("\n" + tr.T("bestOption") + rec.Option + "\n")
		if rec.AllComplete {
			b.WriteString(tr.T("allCriteriaComplete") + "\n")
		} else {
			b.WriteString(tr.T("recommendations") + "\n")
			for _, item := range rec.Items {
				b.WriteString("  " + recommendationLine(item, tr) + "\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func recommendationLine(item models.Recommendation, tr *i18n.Translator) string {
	line := fmt.Sprintf("%s: %d %s %d ", item.Criterion, item.Value, tr.T("outOf"), item.Max)
	if item.Complete {
		return line + tr.T("criterionComplete")
	}
	return line + tr.T("recommendation") + " " + strconv.FormatFloat(item.ImprovePercent, 'f', 0, 64) + "%"
}

// matrixCells flattens the matrix into a header row, one row per
// criterion and a totals row.
func matrixCells(m models.Matrix, tr *i18n.Translator) [][]string {
	header := append([]string{tr.T("criteria")}, m.Options...)
	cells := [][]string{header}

	for _, row := range m.Rows {
		line := []string{row.Criterion}
		for _, r := range row.Ratings {
			line = append(line, strconv.Itoa(r))
		}
		cells = append(cells, line)
	}

	totals := []string{tr.T("total")}
	for _, t := range m.Totals {
		totals = append(totals, tr.Printer().Sprintf("%d (%d%%)", t.Score, t.Percent))
	}
	return append(cells, totals)
}

// writeTable pads every column to its widest cell. Widths are measured in
// terminal cells so Arabic and wide characters line up.
func writeTable(b *strings.Builder, cells [][]string) {
	widths := []int{}
	for _, row := range cells {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for r, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = runewidth.FillRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(padded, " | "), " ") + "\n")

		if r == 0 {
			seps := make([]string, len(widths))
			for i, w := range widths {
				seps[i] = strings.Repeat("-", w)
			}
			b.WriteString(strings.Join(seps, "-+-") + "\n")
		}
	}
}

const reportHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.View.Decision.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; margin: 20px; color: #333; }
.report-container { border: 1px solid #eee; border-radius: 8px; padding: 25px; }
h1 { font-size: 28px; text-align: center; margin-bottom: 8px; color: #111; }
.date { text-align: center; color: #888; margin-bottom: 24px; }
h2 { font-size: 20px; border-bottom: 2px solid #eee; padding-bottom: 8px; margin-top: 30px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th, td { border: 1px solid #ddd; padding: 12px; text-align: center; }
th { background-color: #f8f8f8; font-weight: bold; }
.criteria-name { font-weight: 500; }
.total-row { background-color: #f0f8ff; font-weight: bold; }
.winner-card { background-color: #007bff; color: white; padding: 20px; border-radius: 8px; text-align: center; margin-bottom: 24px; }
.winner-message { font-size: 24px; font-weight: bold; }
</style>
</head>
<body>
<div class="report-container">
<h1>{{.View.Decision.Title}}</h1>
<p class="date">{{.Created}}</p>
<div class="winner-card"><div class="winner-message">{{.View.Summary}}</div></div>
<h2>{{t "detailedBreakdown"}}</h2>
<table>
<thead><tr><th>{{t "criteria"}}</th>{{range .View.Matrix.Options}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .View.Matrix.Rows}}<tr><td class="criteria-name">{{.Criterion}}</td>{{range .Ratings}}<td>{{.}}</td>{{end}}</tr>
{{end}}<tr class="total-row"><td>{{t "total"}}</td>{{range .View.Matrix.Totals}}<td>{{.Score}} ({{.Percent}}%)</td>{{end}}</tr>
</tbody>
</table>
{{with .View.Recommendations}}<h2>{{t "bestOption"}}{{.Option}}</h2>
{{if .AllComplete}}<p>{{t "allCriteriaComplete"}}</p>{{else}}<p>{{t "recommendations"}}</p>
<ul>{{range .Items}}<li>{{.Criterion}}: {{.Value}} {{t "outOf"}} {{.Max}} {{if .Complete}}{{t "criterionComplete"}}{{else}}{{t "recommendation"}} {{printf "%.0f" .ImprovePercent}}%{{end}}</li>{{end}}</ul>{{end}}
{{end}}</div>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{"t": func(key string) string { return key }}).
	Parse(reportHTML))

// RenderHTML writes a printable HTML report.
func RenderHTML(w io.Writer, view models.DecisionView, tr *i18n.Translator) error {
	tmpl, err := reportTemplate.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone report template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"t": tr.T})

	data := struct {
		View    models.DecisionView
		Lang    string
		Dir     string
		Created string
	}{
		View: view,
		Lang: string(tr.Language()),
		Dir:  tr.Dir(),
	}
	if !view.Decision.CreatedAt.IsZero() {
		data.Created = view.Decision.CreatedAt.Format("2 Jan 2006 15:04")
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
