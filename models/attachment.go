package models

import "time"

type AttachmentTipo string

const (
	TipoNota  AttachmentTipo = "nota"
	TipoFoto  AttachmentTipo = "foto"
	TipoOutro AttachmentTipo = "outro"
)

func (t AttachmentTipo) IsValid() bool {
	switch t {
	case TipoNota, TipoFoto, TipoOutro:
		return true
	}
	return false
}

type Attachment struct {
	ID        int64          `json:"id" db:"id" bson:"id"`
	ExpenseID int64          `json:"expenseId" db:"expense_id" bson:"expenseId"`
	URL       string         `json:"url" db:"url" bson:"url"`
	Tipo      AttachmentTipo `json:"tipo" db:"tipo" bson:"tipo"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at" bson:"createdAt"`
}
