package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

type AuthHandler struct {
	Auth      *service.Auth
	Sessions  *SessionManager
	Templates *TemplateCache
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	h.Templates.Render(w, "login.html", h.Sessions.PageData(w, r))
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	role := r.FormValue("role")

	id, err := h.Auth.Authenticate(r.Context(), username, password, role)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slog.Info("Login failed", "username", username, "role", role)
		h.Sessions.Flash(w, r, "error", "Invalid username, password, or role")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		serverError(w, "login", err)
		return
	}

	if err := h.Sessions.SignIn(w, r, *id); err != nil {
		serverError(w, "save session", err)
		return
	}

	slog.Info("Login successful", "username", id.Username, "role", id.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	h.Templates.Render(w, "register.html", h.Sessions.PageData(w, r))
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	err := h.Auth.Register(r.Context(), username, password)
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		h.Sessions.Flash(w, r, "error", "Username already exists")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	case errors.As(err, &ve):
		h.Sessions.Flash(w, r, "error", ve.Messages()...)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	case err != nil:
		serverError(w, "register", err)
		return
	}

	slog.Info("Customer registered", "username", username)
	h.Sessions.Flash(w, r, "success", "Account created. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// serverError logs a storage or internal failure and answers 500.
func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error("Request failed", "op", op, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
