// Package cart maintains the per-client collection of items the
// shopper intends to purchase.
package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"VinylVerse/internal/events"
	"VinylVerse/internal/lineitem"
)

// View is the cart as the shopper sees it. The total is recomputed on
// every read, never stored.
type View struct {
	Items      []lineitem.Item `json:"items"`
	TotalCents int64           `json:"total_cents"`
}

type Server struct {
	Store  lineitem.Store
	Log    *zap.Logger
	Events *events.Hub

	// mu serializes read-modify-write cycles so each mutation observes
	// the result of all prior ones.
	mu sync.Mutex
}

// load reads the client's cart, falling back to the empty cart when the
// store misbehaves. Persistence trouble is logged, never surfaced.
func (s *Server) load(ctx context.Context, clientID string) *lineitem.Collection {
	items, err := s.Store.Load(ctx, clientID)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("cart load failed", zap.Error(err), zap.String("client_id", clientID))
		}
		items = nil
	}
	return lineitem.NewCollection(true, items)
}

func (s *Server) mutate(ctx context.Context, clientID string, fn func(*lineitem.Collection)) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.load(ctx, clientID)
	fn(col)

	if err := s.Store.Save(ctx, clientID, col.Items()); err != nil {
		if s.Log != nil {
			s.Log.Warn("cart save failed", zap.Error(err), zap.String("client_id", clientID))
		}
	}

	if s.Events != nil {
		s.Events.Publish(events.ScopeCart, clientID)
	}

	return viewOf(col)
}

func viewOf(col *lineitem.Collection) View {
	return View{
		Items:      col.Items(),
		TotalCents: col.TotalCents(),
	}
}
