package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"
	"github.com/Lieutenant23/Construapp/storage"
)

type ProjectHandler struct {
	Repo        repository.ProjectRepository
	Attachments repository.AttachmentRepository
	Guard       *OwnershipGuard
	Store       storage.FileStore
}

// ListProjects returns the caller's projects, newest first.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	projects, err := h.Repo.ListProjectsByUser(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	if projects == nil {
		projects = []*models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var body struct {
		Name    string  `json:"name"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "Nome é obrigatório")
		return
	}

	project := &models.Project{
		UserID:  userID,
		Name:    body.Name,
		Address: body.Address,
		Status:  models.StatusAtivo,
	}
	if err := h.Repo.CreateProject(project); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject merges the provided fields into the project.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	project, err := h.Guard.CheckProject(userID, projectID)
	if err != nil {
		respondGuardError(w, err)
		return
	}

	var body struct {
		Name    *string               `json:"name"`
		Address *string               `json:"address"`
		Status  *models.ProjectStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if body.Name != nil {
		if *body.Name == "" {
			writeError(w, http.StatusBadRequest, "Nome é obrigatório")
			return
		}
		project.Name = *body.Name
	}
	if body.Address != nil {
		project.Address = body.Address
	}
	if body.Status != nil {
		if !body.Status.IsValid() {
			writeError(w, http.StatusBadRequest, "Status inválido")
			return
		}
		project.Status = *body.Status
	}

	if err := h.Repo.UpdateProject(project); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// DeleteProject removes the project with its expenses and attachments.
// Database rows go first; stored files are cleaned best-effort after,
// so a failed file removal can only leave an orphaned file, never an
// orphaned row.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
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

	attachments, err := h.Attachments.ListAttachmentsByProject(projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	if err := h.Repo.DeleteProjectCascade(projectID); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	for _, a := range attachments {
		if err := h.Store.Remove(a.URL); err != nil {
			log.Printf("orphaned file after project %d delete: %s: %v", projectID, a.URL, err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
