package handlers

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
)

// Register types for gob encoding (used by sessions)
func init() {
	gob.Register(FlashMessage{})
}

const (
	sessionName = "pcstore-session"
	keyUsername = "username"
	keyRole     = "role"
)

// FlashMessage structure
type FlashMessage struct {
	Type    string
	Message string
}

// IdentityHandler is a handler that runs only for a signed-in user.
type IdentityHandler func(w http.ResponseWriter, r *http.Request, id service.Identity)

// SessionManager keeps the signed-in identity and flash messages in a
// gorilla session. The backing store is injected.
type SessionManager struct {
	store sessions.Store
}

func NewSessionManager(store sessions.Store) *SessionManager {
	return &SessionManager{store: store}
}

// NewCookieStore builds the cookie-backed store used in production.
func NewCookieStore(key []byte, secure bool, domain string) *sessions.CookieStore {
	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	store.Options.MaxAge = 86400 * 7
	if domain != "" {
		store.Options.Domain = domain
	}
	return store
}

func (m *SessionManager) session(r *http.Request) *sessions.Session {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// Undecodable cookie (e.g. rotated key); Get still hands back a fresh session.
		slog.Debug("Discarding invalid session cookie", "error", err)
	}
	if session == nil {
		session = sessions.NewSession(m.store, sessionName)
	}
	return session
}

func (m *SessionManager) Identity(r *http.Request) (service.Identity, bool) {
	session := m.session(r)
	username, ok := session.Values[keyUsername].(string)
	if !ok || username == "" {
		return service.Identity{}, false
	}
	role, _ := session.Values[keyRole].(string)
	return service.Identity{Username: username, Role: models.Role(role)}, true
}

func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, id service.Identity) error {
	session := m.session(r)
	session.Values[keyUsername] = id.Username
	session.Values[keyRole] = string(id.Role)
	return session.Save(r, w)
}

func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session := m.session(r)
	delete(session.Values, keyUsername)
	delete(session.Values, keyRole)
	session.AddFlash(FlashMessage{Type: "success", Message: "Logged out successfully!"})
	return session.Save(r, w)
}

// Flash queues messages for the next rendered page.
func (m *SessionManager) Flash(w http.ResponseWriter, r *http.Request, kind string, messages ...string) {
	session := m.session(r)
	for _, msg := range messages {
		session.AddFlash(FlashMessage{Type: kind, Message: msg})
	}
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// PageData collects what every template needs and clears pending flashes.
func (m *SessionManager) PageData(w http.ResponseWriter, r *http.Request) map[string]interface{} {
	session := m.session(r)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"Identity":  nil,
	}
	if id, ok := m.Identity(r); ok {
		data["Identity"] = &id
	}
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
	return data
}

// RequireSession redirects anonymous visitors to the login page.
func (m *SessionManager) RequireSession(next IdentityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.Identity(r)
		if !ok {
			slog.Debug("No session, redirecting to /login", "path", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, id)
	}
}

// RequireRole additionally sends users holding another role back to the catalog.
func (m *SessionManager) RequireRole(role models.Role, next IdentityHandler) http.HandlerFunc {
	return m.RequireSession(func(w http.ResponseWriter, r *http.Request, id service.Identity) {
		if id.Role != role {
			slog.Info("Role check failed, redirecting to /", "path", r.URL.Path, "user", id.Username, "role", id.Role, "required", role)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, id)
	})
}

// GetFlash retrieves flash messages from the session
func GetFlash(session *sessions.Session) []FlashMessage {
	flashes := session.Flashes()
	var messages []FlashMessage
	for _, f := range flashes {
		if fm, ok := f.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	return messages
}
