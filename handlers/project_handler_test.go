package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lieutenant23/Construapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjectsScopedAndNewestFirst(t *testing.T) {
	env := newTestEnv()
	alice := env.seedUser(t, "alice@x.com")
	bob := env.seedUser(t, "bob@x.com")
	first := env.seedProject(t, alice.ID, "Obra 1")
	second := env.seedProject(t, alice.ID, "Obra 2")
	env.seedProject(t, bob.ID, "Obra de Bob")

	w := httptest.NewRecorder()
	env.projects.ListProjects(w, authedRequest(alice.ID, http.MethodGet, "/projects", nil, 0))

	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeJSON[[]*models.Project](t, w)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}

func TestCreateProjectRequiresName(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "a@x.com")

	w := httptest.NewRecorder()
	env.projects.CreateProject(w, authedRequest(user.ID, http.MethodPost, "/projects",
		strings.NewReader(`{"address":"Rua X"}`), 0))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	env.projects.CreateProject(w, authedRequest(user.ID, http.MethodPost, "/projects",
		strings.NewReader(`{"name":"Obra A","address":"Rua X"}`), 0))
	require.Equal(t, http.StatusCreated, w.Code)

	project := decodeJSON[*models.Project](t, w)
	assert.Equal(t, "Obra A", project.Name)
	assert.Equal(t, models.StatusAtivo, project.Status)
	assert.Equal(t, user.ID, project.UserID)
}

func TestUpdateProjectMergesPartialFields(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "a@x.com")
	project := env.seedProject(t, user.ID, "Obra A")

	w := httptest.NewRecorder()
	env.projects.UpdateProject(w, authedRequest(user.ID, http.MethodPut, "/projects/1",
		strings.NewReader(`{"status":"concluido"}`), project.ID))

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeJSON[*models.Project](t, w)
	assert.Equal(t, "Obra A", updated.Name) // untouched
	assert.Equal(t, models.StatusConcluido, updated.Status)
}

func TestUpdateProjectRejectsInvalidStatus(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "a@x.com")
	project := env.seedProject(t, user.ID, "Obra A")

	w := httptest.NewRecorder()
	env.projects.UpdateProject(w, authedRequest(user.ID, http.MethodPut, "/projects/1",
		strings.NewReader(`{"status":"demolida"}`), project.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(t, "owner@x.com")
	intruder := env.seedUser(t, "intruder@x.com")
	project := env.seedProject(t, owner.ID, "Obra A")

	w := httptest.NewRecorder()
	env.projects.UpdateProject(w, authedRequest(intruder.ID, http.MethodPut, "/projects/1",
		strings.NewReader(`{"name":"Tomada"}`), project.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteProjectCascadesRowsAndFiles(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser(t, "a@x.com")
	project := env.seedProject(t, user.ID, "Obra A")
	e1 := env.seedExpense(t, project.ID, "Cimento", models.Money(100), nil)
	e2 := env.seedExpense(t, project.ID, "Areia", models.Money(200), nil)

	for _, e := range []*models.Expense{e1, e2} {
		url, err := env.store.Save("f.jpg", "image/jpeg", strings.NewReader("x"))
		require.NoError(t, err)
		require.NoError(t, env.db.CreateAttachment(&models.Attachment{ExpenseID: e.ID, URL: url}))
	}

	w := httptest.NewRecorder()
	env.projects.DeleteProject(w, authedRequest(user.ID, http.MethodDelete, "/projects/1", nil, project.ID))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Empty(t, env.db.projects)
	assert.Empty(t, env.db.expenses)
	assert.Empty(t, env.db.attachments)
	assert.Len(t, env.store.removed, 2)
}

func TestDeleteProjectSwallowsFileRemovalFailures(t *testing.T) {
	env := newTestEnv()
	env.store.failRemove = true
	user := env.seedUser(t, "a@x.com")
	project := env.seedProject(t, user.ID, "Obra A")
	expense := env.seedExpense(t, project.ID, "Cimento", models.Money(100), nil)
	require.NoError(t, env.db.CreateAttachment(&models.Attachment{ExpenseID: expense.ID, URL: "/uploads/x.jpg"}))

	w := httptest.NewRecorder()
	env.projects.DeleteProject(w, authedRequest(user.ID, http.MethodDelete, "/projects/1", nil, project.ID))

	// Rows are gone even though the file could not be removed.
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, env.db.attachments)
}

func TestDeleteProjectForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(t, "owner@x.com")
	intruder := env.seedUser(t, "intruder@x.com")
	project := env.seedProject(t, owner.ID, "Obra A")

	w := httptest.NewRecorder()
	env.projects.DeleteProject(w, authedRequest(intruder.ID, http.MethodDelete, "/projects/1", nil, project.ID))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, env.db.projects, 1)
}
