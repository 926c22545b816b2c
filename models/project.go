package models

import "time"

type ProjectStatus string

const (
	StatusAtivo     ProjectStatus = "ativo"
	StatusPausado   ProjectStatus = "pausado"
	StatusConcluido ProjectStatus = "concluido"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusAtivo, StatusPausado, StatusConcluido:
		return true
	}
	return false
}

type Project struct {
	ID        int64         `json:"id" db:"id" bson:"id"`
	UserID    int64         `json:"userId" db:"user_id" bson:"userId"`
	Name      string        `json:"name" db:"name" bson:"name"`
	Address   *string       `json:"address" db:"address" bson:"address,omitempty"`
	Status    ProjectStatus `json:"status" db:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at" bson:"createdAt"`
}
