package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"otoman/internal/api"
	"otoman/internal/user"
	"otoman/internal/validate"
	"otoman/pkg/config"
)

type Users interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type Handlers struct {
	Cfg   config.Config
	Log   *zap.Logger
	Users Users
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (req RegisterRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	if len(strings.TrimSpace(req.Name)) < 3 {
		errs.Add("name", "Nama minimal 3 karakter")
	}
	if len(req.Name) > 100 {
		errs.Add("name", "Nama maksimal 100 karakter")
	}
	if !validate.Email(req.Email) {
		errs.Add("email", "Format email tidak valid")
	}
	if !validate.Phone(req.Phone) {
		errs.Add("phone", "Format no. telepon tidak valid")
	}
	if len(req.Password) < 6 {
		errs.Add("password", "Password minimal 6 karakter")
	}
	return errs
}

func (h Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}

	if errs := req.Validate(); errs.Any() {
		api.WriteValidationErrors(w, "Registrasi gagal", errs)
		return
	}

	u := &user.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: validate.NormalizePhone(req.Phone),
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}
	u.PasswordHash = hash

	if err := h.Users.Create(r.Context(), u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			errs := validate.Errors{}
			errs.Add("email", "Email sudah terdaftar")
			api.WriteValidationErrors(w, "Registrasi gagal", errs)
			return
		}
		h.Log.Error("create user", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}

	token, err := IssueToken(h.Cfg.JWT, u.ID, u.Email, time.Now())
	if err != nil {
		h.Log.Error("issue token", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}

	h.Log.Info("user registered", zap.String("user_id", u.ID))
	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Registrasi berhasil",
		"user":    u,
		"token":   token,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !VerifyPassword(u.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		api.WriteError(w, http.StatusUnauthorized, "Email atau password salah")
		return
	}

	token, err := IssueToken(h.Cfg.JWT, u.ID, u.Email, time.Now())
	if err != nil {
		h.Log.Error("issue token", zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", u.ID))
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login berhasil",
		"user":    u,
		"token":   token,
	})
}

func (h Handlers) Me(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}

// Logout is stateless: tokens expire on their own and the client discards
// its stored copy.
func (h Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"message": "Logout berhasil"})
}
