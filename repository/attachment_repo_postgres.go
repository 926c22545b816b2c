package repository

import (
	"database/sql"
	"time"

	"github.com/Lieutenant23/Construapp/models"
)

type PostgresAttachmentRepo struct {
	DB *sql.DB
}

func NewPostgresAttachmentRepo(db *sql.DB) *PostgresAttachmentRepo {
	return &PostgresAttachmentRepo{DB: db}
}

func (r *PostgresAttachmentRepo) CreateAttachment(attachment *models.Attachment) error {
	if attachment.CreatedAt.IsZero() {
		attachment.CreatedAt = time.Now().UTC()
	}
	if attachment.Tipo == "" {
		attachment.Tipo = models.TipoNota
	}
	return r.DB.QueryRow(`
		INSERT INTO attachment (expense_id, url, tipo, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, attachment.ExpenseID, attachment.URL, attachment.Tipo, attachment.CreatedAt).Scan(&attachment.ID)
}

func (r *PostgresAttachmentRepo) GetAttachmentByID(id int64) (*models.Attachment, error) {
	a := &models.Attachment{}
	err := r.DB.QueryRow(`
		SELECT id, expense_id, url, tipo, created_at
		FROM attachment
		WHERE id=$1
	`, id).Scan(&a.ID, &a.ExpenseID, &a.URL, &a.Tipo, &a.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *PostgresAttachmentRepo) ListAttachmentsByExpense(expenseID int64) ([]*models.Attachment, error) {
	return r.queryAttachments(`
		SELECT id, expense_id, url, tipo, created_at
		FROM attachment
		WHERE expense_id=$1
		ORDER BY id
	`, expenseID)
}

func (r *PostgresAttachmentRepo) ListAttachmentsByProject(projectID int64) ([]*models.Attachment, error) {
	return r.queryAttachments(`
		SELECT a.id, a.expense_id, a.url, a.tipo, a.created_at
		FROM attachment a
		JOIN expense e ON e.id = a.expense_id
		WHERE e.project_id=$1
		ORDER BY a.id
	`, projectID)
}

func (r *PostgresAttachmentRepo) DeleteAttachment(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM attachment WHERE id=$1`, id)
	return err
}

func (r *PostgresAttachmentRepo) queryAttachments(query string, arg int64) ([]*models.Attachment, error) {
	rows, err := r.DB.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []*models.Attachment
	for rows.Next() {
		a := &models.Attachment{}
		if err := rows.Scan(&a.ID, &a.ExpenseID, &a.URL, &a.Tipo, &a.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}
