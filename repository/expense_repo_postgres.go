package repository

import (
	"database/sql"
	"time"

	"github.com/Lieutenant23/Construapp/models"

	"github.com/lib/pq"
)

type PostgresExpenseRepo struct {
	DB *sql.DB
}

func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{DB: db}
}

func (r *PostgresExpenseRepo) CreateExpense(expense *models.Expense) error {
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO expense (project_id, descricao, valor_cents, categoria, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, expense.ProjectID, expense.Descricao, expense.Valor.Cents(), expense.Categoria, expense.CreatedAt).Scan(&expense.ID)
}

func (r *PostgresExpenseRepo) GetExpenseByID(id int64) (*models.Expense, error) {
	e := &models.Expense{}
	var cents int64
	err := r.DB.QueryRow(`
		SELECT id, project_id, descricao, valor_cents, categoria, created_at
		FROM expense
		WHERE id=$1
	`, id).Scan(&e.ID, &e.ProjectID, &e.Descricao, &cents, &e.Categoria, &e.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.Valor = models.Money(cents)
	return e, nil
}

func (r *PostgresExpenseRepo) ListExpensesByProject(projectID int64) ([]*models.Expense, error) {
	rows, err := r.DB.Query(`
		SELECT id, project_id, descricao, valor_cents, categoria, created_at
		FROM expense
		WHERE project_id=$1
		ORDER BY id DESC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	var ids []int64
	byID := make(map[int64]*models.Expense)
	for rows.Next() {
		e := &models.Expense{}
		var cents int64
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Descricao, &cents, &e.Categoria, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Valor = models.Money(cents)
		expenses = append(expenses, e)
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return expenses, nil
	}

	attRows, err := r.DB.Query(`
		SELECT id, expense_id, url, tipo, created_at
		FROM attachment
		WHERE expense_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer attRows.Close()

	for attRows.Next() {
		a := &models.Attachment{}
		if err := attRows.Scan(&a.ID, &a.ExpenseID, &a.URL, &a.Tipo, &a.CreatedAt); err != nil {
			return nil, err
		}
		if e, ok := byID[a.ExpenseID]; ok {
			e.Attachments = append(e.Attachments, a)
		}
	}
	return expenses, attRows.Err()
}

func (r *PostgresExpenseRepo) UpdateExpense(expense *models.Expense) error {
	_, err := r.DB.Exec(`
		UPDATE expense
		SET descricao=$1, valor_cents=$2, categoria=$3
		WHERE id=$4
	`, expense.Descricao, expense.Valor.Cents(), expense.Categoria, expense.ID)
	return err
}

// DeleteExpenseCascade removes the expense and its attachment rows in
// one transaction.
func (r *PostgresExpenseRepo) DeleteExpenseCascade(expenseID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attachment WHERE expense_id=$1`, expenseID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM expense WHERE id=$1`, expenseID); err != nil {
		return err
	}
	return tx.Commit()
}
