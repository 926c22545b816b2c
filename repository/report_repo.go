package repository

import "github.com/Lieutenant23/Construapp/models"

// ReportRepository combines repositories to build category reports,
// the same aggregation backing the JSON, CSV and PDF renderings.
type ReportRepository struct {
	ExpenseRepo ExpenseRepository
}

func NewReportRepository(expenseRepo ExpenseRepository) *ReportRepository {
	return &ReportRepository{ExpenseRepo: expenseRepo}
}

// BuildProjectReport aggregates a project's expenses by category.
func (r *ReportRepository) BuildProjectReport(projectID int64) (*models.Report, error) {
	expenses, err := r.ExpenseRepo.ListExpensesByProject(projectID)
	if err != nil {
		return nil, err
	}
	return models.BuildReport(expenses), nil
}
