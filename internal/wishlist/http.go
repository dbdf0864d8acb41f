package wishlist

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"VinylVerse/internal/client"
	"VinylVerse/internal/lineitem"
	"VinylVerse/pkg/kit"
)

const maxBodyBytes = 1 << 20

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleGet)
	r.Post("/items", s.handleAdd)
	r.Get("/items/{id}", s.handleContains)
	r.Delete("/items/{id}", s.handleRemove)
	r.Delete("/", s.handleClear)

	return r
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	clientID, ok := clientFrom(w, r)
	if !ok {
		return
	}

	kit.WriteJSON(w, http.StatusOK, viewOf(s.load(r.Context(), clientID)))
}

type addReq struct {
	ProductID  int    `json:"product_id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	clientID, ok := clientFrom(w, r)
	if !ok {
		return
	}

	var req addReq
	if err := kit.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.ProductID <= 0 || strings.TrimSpace(req.Title) == "" || req.PriceCents < 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "bad item", nil)
		return
	}

	view := s.mutate(r.Context(), clientID, func(col *lineitem.Collection) {
		col.Add(lineitem.Item{
			ProductID:  req.ProductID,
			Title:      req.Title,
			Artist:     req.Artist,
			PriceCents: req.PriceCents,
			Image:      req.Image,
		})
	})

	kit.WriteJSON(w, http.StatusOK, view)
}

// handleContains is the membership probe the views use to toggle the
// heart icon: 200 when present, 404 when not.
func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	clientID, ok := clientFrom(w, r)
	if !ok {
		return
	}

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if !s.load(r.Context(), clientID).Contains(id) {
		kit.WriteError(w, r, http.StatusNotFound, "not in wishlist", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{"product_id": id, "in_wishlist": true})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	clientID, ok := clientFrom(w, r)
	if !ok {
		return
	}

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	view := s.mutate(r.Context(), clientID, func(col *lineitem.Collection) {
		col.Remove(id)
	})

	kit.WriteJSON(w, http.StatusOK, view)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	clientID, ok := clientFrom(w, r)
	if !ok {
		return
	}

	view := s.mutate(r.Context(), clientID, func(col *lineitem.Collection) {
		col.Clear()
	})

	kit.WriteJSON(w, http.StatusOK, view)
}

func clientFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := client.IDFromContext(r.Context())
	if !ok || id == "" {
		kit.WriteError(w, r, http.StatusInternalServerError, "no client identity", nil)
		return "", false
	}
	return id, true
}

func itemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad item id", map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}
