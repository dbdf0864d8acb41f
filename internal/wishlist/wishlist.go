// Package wishlist maintains the per-client saved-for-later set. It is
// the cart's shape with quantity collapsed to membership.
package wishlist

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"VinylVerse/internal/events"
	"VinylVerse/internal/lineitem"
)

type View struct {
	Items []lineitem.Item `json:"items"`
}

type Server struct {
	Store  lineitem.Store
	Log    *zap.Logger
	Events *events.Hub

	mu sync.Mutex
}

func (s *Server) load(ctx context.Context, clientID string) *lineitem.Collection {
	items, err := s.Store.Load(ctx, clientID)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("wishlist load failed", zap.Error(err), zap.String("client_id", clientID))
		}
		items = nil
	}
	return lineitem.NewCollection(false, items)
}

func (s *Server) mutate(ctx context.Context, clientID string, fn func(*lineitem.Collection)) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.load(ctx, clientID)
	fn(col)

	if err := s.Store.Save(ctx, clientID, col.Items()); err != nil {
		if s.Log != nil {
			s.Log.Warn("wishlist save failed", zap.Error(err), zap.String("client_id", clientID))
		}
	}

	if s.Events != nil {
		s.Events.Publish(events.ScopeWishlist, clientID)
	}

	return viewOf(col)
}

func viewOf(col *lineitem.Collection) View {
	return View{Items: col.Items()}
}
