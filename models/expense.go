package models

import "time"

type Expense struct {
	ID        int64     `json:"id" db:"id" bson:"id"`
	ProjectID int64     `json:"projectId" db:"project_id" bson:"projectId"`
	Descricao string    `json:"descricao" db:"descricao" bson:"descricao"`
	Valor     Money     `json:"valor" db:"valor_cents" bson:"valorCents"`
	Categoria *string   `json:"categoria" db:"categoria" bson:"categoria,omitempty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`

	// Populated when listing a project's expenses.
	Attachments []*Attachment `json:"attachments,omitempty" bson:"-"`
}
