package utils

import (
	"encoding/csv"
	"io"

	"github.com/Lieutenant23/Construapp/models"
)

// WriteReportCSV renders a report as `categoria,total` rows with a
// trailing TOTAL line. Categories come out alphabetically so the output
// is stable for the same input.
func WriteReportCSV(w io.Writer, report *models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"categoria", "total"}); err != nil {
		return err
	}
	for _, cat := range report.Categories() {
		if err := cw.Write([]string{cat, report.PorCategoria[cat].String()}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"TOTAL", report.TotalGeral.String()}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
