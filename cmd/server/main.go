package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"route-roster-service/internal/adapters/cache"
	"route-roster-service/internal/adapters/repositories"
	"route-roster-service/internal/adapters/sessions"
	"route-roster-service/internal/adapters/upstream"
	"route-roster-service/internal/api"
	"route-roster-service/internal/config"
	"route-roster-service/internal/platform/db"
	"route-roster-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (upstream API, Postgres, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	corsOrigin := config.Get("CORS_ORIGIN", "http://localhost:3000")
	backend := config.Get("ROSTER_BACKEND", "upstream")

	// The route optimizer is always external; roster reads can come either
	// from the same upstream API or from a local Postgres mirror.
	upstreamURL := os.Getenv("UPSTREAM_BASE_URL")
	if strings.TrimSpace(upstreamURL) == "" {
		log.Fatal("UPSTREAM_BASE_URL is required")
	}

	client, err := upstream.NewClient(upstreamURL)
	if err != nil {
		log.Fatal(err)
	}

	var source ports.RosterSource
	switch backend {
	case "upstream":
		source = client
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required when ROSTER_BACKEND=postgres")
		}

		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		source = repositories.NewPostgresRosterRepository(pg)
	default:
		log.Fatalf("unknown ROSTER_BACKEND %q (want upstream or postgres)", backend)
	}

	// Redis is optional: with it, reference collections are cached and
	// composition sessions survive restarts and scale across instances.
	store := ports.SelectionStore(sessions.NewMemoryStore())
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()

		source = cache.NewCachedRosterSource(source, rdb, 5*time.Minute)
		store = sessions.NewRedisStore(rdb, 30*time.Minute)
		log.Printf("Using redis addr=%s for roster cache and sessions", addr)
	}

	router := api.NewRouter(source, store, client, corsOrigin)

	log.Printf("Server listening addr=:%s backend=%s", port, backend)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
