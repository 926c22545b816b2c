package models

import "sort"

// UncategorizedLabel buckets expenses that carry no category.
const UncategorizedLabel = "Sem categoria"

// Report holds per-category totals and the overall sum for one project.
type Report struct {
	PorCategoria map[string]Money `json:"porCategoria"`
	TotalGeral   Money            `json:"totalGeral"`
}

// BuildReport groups expenses by category and sums their values. The
// result is independent of input order.
func BuildReport(expenses []*Expense) *Report {
	report := &Report{PorCategoria: make(map[string]Money)}
	for _, e := range expenses {
		cat := UncategorizedLabel
		if e.Categoria != nil && *e.Categoria != "" {
			cat = *e.Categoria
		}
		report.PorCategoria[cat] = report.PorCategoria[cat].Add(e.Valor)
		report.TotalGeral = report.TotalGeral.Add(e.Valor)
	}
	return report
}

// Categories returns the category names sorted alphabetically, so CSV
// and PDF renderings are deterministic.
func (r *Report) Categories() []string {
	cats := make([]string, 0, len(r.PorCategoria))
	for cat := range r.PorCategoria {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
