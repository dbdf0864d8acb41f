package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"VinylVerse/pkg/kit"
)

type Server struct {
	Catalog *Catalog
}

// Routes is the /products sub-router; the genre list lives at the top
// level and is wired separately via GenresHandler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/{id}", s.get)
	r.Get("/{id}/related", s.related)
	r.Get("/{id}/bundle", s.bundle)

	return r
}

func (s *Server) GenresHandler() http.HandlerFunc { return s.genres }

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromRequest(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad query", map[string]any{"cause": err.Error()})
		return
	}

	kit.WriteJSON(w, http.StatusOK, q.Apply(s.Catalog.All()))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) related(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			kit.WriteError(w, r, http.StatusBadRequest, "bad limit", nil)
			return
		}
		limit = n
	}

	kit.WriteJSON(w, http.StatusOK, s.Catalog.Related(p, limit))
}

func (s *Server) bundle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.Catalog.Bundle(p))
}

func (s *Server) genres(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.Genres())
}

// lookup resolves the {id} URL param to a product, writing the error
// response itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (Product, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", map[string]any{"id": raw})
		return Product{}, false
	}

	p, ok := s.Catalog.ByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return Product{}, false
	}
	return p, true
}

func queryFromRequest(r *http.Request) (Query, error) {
	qs := r.URL.Query()

	q := Query{
		Search: qs.Get("search"),
		Tag:    qs.Get("filter"),
		Genre:  qs.Get("genre"),
		Sort:   SortKey(qs.Get("sort")),
	}

	var err error
	if q.MinPriceCents, err = centsParam(qs.Get("min_price_cents")); err != nil {
		return Query{}, err
	}
	if q.MaxPriceCents, err = centsParam(qs.Get("max_price_cents")); err != nil {
		return Query{}, err
	}
	return q, nil
}

func centsParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
