package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"
	"github.com/Lieutenant23/Construapp/storage"
)

type ExpenseHandler struct {
	Repo        repository.ExpenseRepository
	Attachments repository.AttachmentRepository
	Guard       *OwnershipGuard
	Store       storage.FileStore
}

// ListExpenses returns a project's expenses newest-first, attachments
// included.
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckProject(userID, projectID); err != nil {
		respondGuardError(w, err)
		return
	}

	expenses, err := h.Repo.ListExpensesByProject(projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckProject(userID, projectID); err != nil {
		respondGuardError(w, err)
		return
	}

	var body struct {
		Descricao string        `json:"descricao"`
		Valor     *models.Money `json:"valor"`
		Categoria *string       `json:"categoria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Descrição e valor são obrigatórios")
		return
	}
	if body.Descricao == "" || body.Valor == nil {
		writeError(w, http.StatusBadRequest, "Descrição e valor são obrigatórios")
		return
	}

	expense := &models.Expense{
		ProjectID: projectID,
		Descricao: body.Descricao,
		Valor:     *body.Valor,
		Categoria: body.Categoria,
	}
	if err := h.Repo.CreateExpense(expense); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// UpdateExpense merges the provided fields into the expense.
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	expenseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	expense, err := h.Guard.CheckExpense(userID, expenseID)
	if err != nil {
		respondGuardError(w, err)
		return
	}

	var body struct {
		Descricao *string       `json:"descricao"`
		Valor     *models.Money `json:"valor"`
		Categoria *string       `json:"categoria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if body.Descricao != nil {
		if *body.Descricao == "" {
			writeError(w, http.StatusBadRequest, "Descrição e valor são obrigatórios")
			return
		}
		expense.Descricao = *body.Descricao
	}
	if body.Valor != nil {
		expense.Valor = *body.Valor
	}
	if body.Categoria != nil {
		expense.Categoria = body.Categoria
	}

	if err := h.Repo.UpdateExpense(expense); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

// DeleteExpense removes the expense, its attachment rows and their
// stored files. File cleanup is best-effort with failures logged.
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	expenseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Guard.CheckExpense(userID, expenseID); err != nil {
		respondGuardError(w, err)
		return
	}

	attachments, err := h.Attachments.ListAttachmentsByExpense(expenseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	if err := h.Repo.DeleteExpenseCascade(expenseID); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	for _, a := range attachments {
		if err := h.Store.Remove(a.URL); err != nil {
			log.Printf("orphaned file after expense %d delete: %s: %v", expenseID, a.URL, err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
