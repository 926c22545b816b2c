package repository

import (
	"database/sql"
	"time"

	"github.com/Lieutenant23/Construapp/models"
)

type PostgresProjectRepo struct {
	DB *sql.DB
}

func NewPostgresProjectRepo(db *sql.DB) *PostgresProjectRepo {
	return &PostgresProjectRepo{DB: db}
}

func (r *PostgresProjectRepo) CreateProject(project *models.Project) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if project.Status == "" {
		project.Status = models.StatusAtivo
	}
	return r.DB.QueryRow(`
		INSERT INTO project (user_id, name, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, project.UserID, project.Name, project.Address, project.Status, project.CreatedAt).Scan(&project.ID)
}

func (r *PostgresProjectRepo) ListProjectsByUser(userID int64) ([]*models.Project, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, name, address, status, created_at
		FROM project
		WHERE user_id=$1
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Address, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresProjectRepo) GetProjectByID(id int64) (*models.Project, error) {
	p := &models.Project{}
	err := r.DB.QueryRow(`
		SELECT id, user_id, name, address, status, created_at
		FROM project
		WHERE id=$1
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Address, &p.Status, &p.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresProjectRepo) UpdateProject(project *models.Project) error {
	_, err := r.DB.Exec(`
		UPDATE project
		SET name=$1, address=$2, status=$3
		WHERE id=$4
	`, project.Name, project.Address, project.Status, project.ID)
	return err
}

// DeleteProjectCascade removes attachment rows, expense rows and the
// project itself inside one transaction.
func (r *PostgresProjectRepo) DeleteProjectCascade(projectID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		DELETE FROM attachment
		WHERE expense_id IN (SELECT id FROM expense WHERE project_id=$1)
	`, projectID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM expense WHERE project_id=$1`, projectID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM project WHERE id=$1`, projectID); err != nil {
		return err
	}
	return tx.Commit()
}
