package repository

import "github.com/Lieutenant23/Construapp/models"

// AttachmentRepository defines the interface for attachment operations.
type AttachmentRepository interface {
	CreateAttachment(attachment *models.Attachment) error
	GetAttachmentByID(id int64) (*models.Attachment, error)
	ListAttachmentsByExpense(expenseID int64) ([]*models.Attachment, error)
	// ListAttachmentsByProject gathers every attachment under the
	// project, used to clean stored files before a cascade delete.
	ListAttachmentsByProject(projectID int64) ([]*models.Attachment, error)
	DeleteAttachment(id int64) error
}
