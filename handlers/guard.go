package handlers

import (
	"errors"
	"net/http"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"
)

// ErrForbidden covers both "does not exist" and "not owned": collapsing
// the two keeps other users' resource ids unguessable.
var ErrForbidden = errors.New("forbidden")

// OwnershipGuard authorizes resource access by walking each resource up
// to its project and comparing the owner with the caller. Guards run
// after authentication and before any handler touches the resource.
type OwnershipGuard struct {
	Projects    repository.ProjectRepository
	Expenses    repository.ExpenseRepository
	Attachments repository.AttachmentRepository
}

// CheckProject returns the project when the caller owns it.
func (g *OwnershipGuard) CheckProject(userID, projectID int64) (*models.Project, error) {
	project, err := g.Projects.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		return nil, ErrForbidden
	}
	return project, nil
}

// CheckExpense resolves the expense's parent project and applies the
// same ownership rule transitively.
func (g *OwnershipGuard) CheckExpense(userID, expenseID int64) (*models.Expense, error) {
	expense, err := g.Expenses.GetExpenseByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrForbidden
	}
	if _, err := g.CheckProject(userID, expense.ProjectID); err != nil {
		return nil, err
	}
	return expense, nil
}

// CheckAttachment walks attachment -> expense -> project.
func (g *OwnershipGuard) CheckAttachment(userID, attachmentID int64) (*models.Attachment, error) {
	attachment, err := g.Attachments.GetAttachmentByID(attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, ErrForbidden
	}
	if _, err := g.CheckExpense(userID, attachment.ExpenseID); err != nil {
		return nil, err
	}
	return attachment, nil
}

// respondGuardError maps a guard failure onto the HTTP taxonomy.
func respondGuardError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrForbidden) {
		writeError(w, http.StatusForbidden, "Sem permissão")
		return
	}
	writeError(w, http.StatusInternalServerError, "Erro interno")
}
