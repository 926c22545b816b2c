package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lieutenant23/Construapp/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doSignup(env *testEnv, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	env.auth.Signup(w, r)
	return w
}

func doLogin(env *testEnv, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	env.auth.Login(w, r)
	return w
}

func TestSignupLoginVerifyRoundTrip(t *testing.T) {
	env := newTestEnv()

	w := doSignup(env, `{"name":"Demo","email":"demo@x.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "Demo", created["name"])
	assert.Equal(t, "demo@x.com", created["email"])
	assert.NotContains(t, w.Body.String(), "password")

	w = doLogin(env, `{"email":"demo@x.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string]string](t, w)
	userID, err := auth.ParseToken(testJWTSecret, resp["token"])
	require.NoError(t, err)
	assert.Equal(t, int64(created["id"].(float64)), userID)
}

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv()

	for _, body := range []string{
		`{"email":"a@x.com","password":"pw"}`,
		`{"name":"A","password":"pw"}`,
		`{"name":"A","email":"a@x.com"}`,
		`not json`,
	} {
		w := doSignup(env, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	w := doSignup(env, `{"name":"A","email":"dup@x.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doSignup(env, `{"name":"B","email":"dup@x.com","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email já cadastrado")
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	env := newTestEnv()
	doSignup(env, `{"name":"A","email":"a@x.com","password":"right"}`)

	unknown := doLogin(env, `{"email":"nobody@x.com","password":"right"}`)
	wrongPw := doLogin(env, `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// Same message for both, so callers cannot probe which field failed.
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}
