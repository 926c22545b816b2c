package repository

import "github.com/Lieutenant23/Construapp/models"

// ExpenseRepository defines the interface for expense operations.
type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) error
	GetExpenseByID(id int64) (*models.Expense, error)
	// ListExpensesByProject returns the project's expenses newest-first
	// with attachments populated.
	ListExpensesByProject(projectID int64) ([]*models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	// DeleteExpenseCascade removes the expense and its attachment rows.
	DeleteExpenseCascade(expenseID int64) error
}
