// Package storefront composes the catalog, cart, wishlist, marketing
// and events surfaces into the single storefront handler. The stores
// are injected here; nothing in the domain packages is a global.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"VinylVerse/internal/cart"
	"VinylVerse/internal/catalog"
	"VinylVerse/internal/client"
	"VinylVerse/internal/events"
	"VinylVerse/internal/lineitem"
	"VinylVerse/internal/marketing"
	"VinylVerse/internal/wishlist"
	"VinylVerse/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Catalog        *catalog.Catalog
	CartStore      lineitem.Store
	WishlistStore  lineitem.Store
	MarketingStore marketing.Store
	Events         *events.Hub
}

const readyPingTimeout = 1 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	catalogSrv := &catalog.Server{Catalog: deps.Catalog}
	cartSrv := &cart.Server{Store: deps.CartStore, Log: httpDeps.Log, Events: deps.Events}
	wishlistSrv := &wishlist.Server{Store: deps.WishlistStore, Log: httpDeps.Log, Events: deps.Events}
	marketingSrv := &marketing.Server{Store: deps.MarketingStore, Log: httpDeps.Log}

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	r.Get("/genres", catalogSrv.GenresHandler())
	r.Mount("/products", catalogSrv.Routes())

	r.Group(func(pr chi.Router) {
		pr.Use(client.Identify)
		pr.Mount("/cart", cartSrv.Routes())
		pr.Mount("/wishlist", wishlistSrv.Routes())
	})

	if deps.Events != nil {
		r.Get("/events", deps.Events.Handler)
	}

	r.Mount("/", marketingSrv.Routes())

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
		defer cancel()

		checks := []struct {
			name string
			ping func(context.Context) error
		}{
			{"cart", deps.CartStore.Ping},
			{"wishlist", deps.WishlistStore.Ping},
			{"marketing", deps.MarketingStore.Ping},
		}

		for _, c := range checks {
			if err := c.ping(ctx); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", c.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"store": c.name})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
