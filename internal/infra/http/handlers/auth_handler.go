package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type AuthHandler struct {
	Repo      usecase.AdminUserRepositoryInterface
	JWTSecret string
}

func NewAuthHandler(repo usecase.AdminUserRepositoryInterface, jwtSecret string) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: jwtSecret}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string            `json:"token"`
	Admin *entity.AdminUser `json:"admin"`
}

// HandleLogin is POST /api/admin/login. Bad credentials always produce
// the same message, never revealing whether the account exists.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Password) < 8 {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := h.Repo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			log.Printf("❌ Admin lookup failed: %v", err)
		}
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.NewAdminToken(h.JWTSecret, user.ID, user.Email)
	if err != nil {
		log.Printf("❌ Failed to sign session token: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Admin: user})
}
