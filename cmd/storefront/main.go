package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"VinylVerse/internal/catalog"
	"VinylVerse/internal/events"
	"VinylVerse/internal/lineitem"
	"VinylVerse/internal/marketing"
	"VinylVerse/internal/storefront"
	"VinylVerse/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "storefront"
	log := kit.NewLogger(service, getenv("ENV", "prod"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	deps := storefront.Deps{
		Catalog: catalog.New(),
		Events:  events.NewHub(log),
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		deps.CartStore = lineitem.NewPostgresStore(db, lineitem.CartTable)
		deps.WishlistStore = lineitem.NewPostgresStore(db, lineitem.WishlistTable)
		deps.MarketingStore = marketing.NewPostgresStore(db)
		log.Info("stores: postgres")
	} else {
		deps.CartStore = lineitem.NewMemStore()
		deps.WishlistStore = lineitem.NewMemStore()
		deps.MarketingStore = marketing.NewMemStore()
		log.Info("stores: in-memory (state is lost on restart)")
	}

	reg := prometheus.NewRegistry()
	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
