package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lieutenant23/Construapp/auth"
	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Repo      repository.UserRepository
	JWTSecret string
}

type signupResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup handler
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "Campos obrigatórios")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	user := &models.User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(hashed),
	}
	if err := h.Repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email já cadastrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login handler. Unknown email and wrong password answer with the same
// message so neither is distinguishable.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	user, err := h.Repo.GetUserByEmail(creds.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	token, err := auth.SignToken(h.JWTSecret, user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
