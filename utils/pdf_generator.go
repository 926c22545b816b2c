package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/web"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type reportRow struct {
	Categoria string
	Valor     string
}

type reportPDFData struct {
	ProjectName string
	Rows        []reportRow
	Total       string
}

// buildReportHTML renders the report template with one line per
// category and the trailing total.
func buildReportHTML(project *models.Project, report *models.Report) (string, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/report_template.html")
	if err != nil {
		return "", err
	}

	data := reportPDFData{
		ProjectName: project.Name,
		Total:       report.TotalGeral.String(),
	}
	for _, cat := range report.Categories() {
		data.Rows = append(data.Rows, reportRow{
			Categoria: cat,
			Valor:     report.PorCategoria[cat].String(),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateReportPDF renders the category report to PDF with headless
// Chrome, printing the same numbers the JSON and CSV renderings carry.
func GenerateReportPDF(project *models.Project, report *models.Report) ([]byte, error) {
	html, err := buildReportHTML(project, report)
	if err != nil {
		return nil, err
	}

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "report_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
