package repository

import (
	"database/sql"
	"time"

	"github.com/Lieutenant23/Construapp/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser inserts a user after validating email uniqueness.
func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO app_user (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Name, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM app_user
		WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM app_user
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
