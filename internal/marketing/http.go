package marketing

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"VinylVerse/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20
	maxMessage   = 4000

	newsletterLimitPerMin = 5
	contactLimitPerMin    = 3
	limitWindow           = 60 * time.Second
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	newsletterLimiter := kit.NewIPRateLimiter(newsletterLimitPerMin, limitWindow)
	contactLimiter := kit.NewIPRateLimiter(contactLimitPerMin, limitWindow)

	r.With(newsletterLimiter.Middleware).Post("/newsletter", s.handleSubscribe)
	r.With(contactLimiter.Middleware).Post("/contact", s.handleContact)

	return r
}

type subscribeReq struct {
	Email string `json:"email"`
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := kit.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	email := normalizeEmail(req.Email)
	if !looksLikeEmail(email) {
		kit.WriteError(w, r, http.StatusBadRequest, "valid email required", nil)
		return
	}

	err := s.Store.Subscribe(r.Context(), email)
	if errors.Is(err, ErrAlreadySubscribed) {
		// Re-subscribing is fine, the signup just already exists.
		kit.WriteJSON(w, http.StatusOK, map[string]any{"status": "already_subscribed"})
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("newsletter subscribe failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, map[string]any{"status": "subscribed"})
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactReq
	if err := kit.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	email := normalizeEmail(req.Email)

	if req.Name == "" || req.Message == "" || !looksLikeEmail(email) {
		kit.WriteError(w, r, http.StatusBadRequest, "name, email and message required", nil)
		return
	}
	if len(req.Message) > maxMessage {
		kit.WriteError(w, r, http.StatusBadRequest, "message too long", map[string]any{"max_len": maxMessage})
		return
	}

	m := Message{
		ID:        "m_" + uuid.NewString(),
		Name:      req.Name,
		Email:     email,
		Body:      req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.SaveMessage(r.Context(), m); err != nil {
		if s.Log != nil {
			s.Log.Error("contact message save failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, map[string]any{"id": m.ID})
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
