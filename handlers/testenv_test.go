package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Lieutenant23/Construapp/auth"
	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"

	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	db    *fakeDB
	store *fakeStore
	guard *OwnershipGuard

	auth        *AuthHandler
	projects    *ProjectHandler
	expenses    *ExpenseHandler
	attachments *AttachmentHandler
	reports     *ReportHandler
}

func newTestEnv() *testEnv {
	db := newFakeDB()
	store := newFakeStore()
	guard := &OwnershipGuard{Projects: db, Expenses: db, Attachments: db}

	return &testEnv{
		db:    db,
		store: store,
		guard: guard,
		auth:  &AuthHandler{Repo: db, JWTSecret: testJWTSecret},
		projects: &ProjectHandler{
			Repo:        db,
			Attachments: db,
			Guard:       guard,
			Store:       store,
		},
		expenses: &ExpenseHandler{
			Repo:        db,
			Attachments: db,
			Guard:       guard,
			Store:       store,
		},
		attachments: &AttachmentHandler{Repo: db, Guard: guard, Store: store},
		reports: &ReportHandler{
			Repo:  repository.NewReportRepository(db),
			Guard: guard,
		},
	}
}

// seedUser inserts a user directly into the fake database.
func (env *testEnv) seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, PasswordHash: "x"}
	require.NoError(t, env.db.CreateUser(user))
	return user
}

func (env *testEnv) seedProject(t *testing.T, userID int64, name string) *models.Project {
	t.Helper()
	project := &models.Project{UserID: userID, Name: name}
	require.NoError(t, env.db.CreateProject(project))
	return project
}

func (env *testEnv) seedExpense(t *testing.T, projectID int64, descricao string, valor models.Money, categoria *string) *models.Expense {
	t.Helper()
	expense := &models.Expense{ProjectID: projectID, Descricao: descricao, Valor: valor, Categoria: categoria}
	require.NoError(t, env.db.CreateExpense(expense))
	return expense
}

// authedRequest builds a request carrying the user id the way
// RequireAuth would have attached it, with an {id} path value.
func authedRequest(userID int64, method, target string, body io.Reader, pathID int64) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r = r.WithContext(auth.WithUserID(r.Context(), userID))
	if pathID != 0 {
		r.SetPathValue("id", strconv.FormatInt(pathID, 10))
	}
	return r
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }
