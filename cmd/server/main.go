package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wastelandforge/warband/internal/config"
	"github.com/wastelandforge/warband/internal/domain/catalog"
	"github.com/wastelandforge/warband/internal/handlers/api"
	"github.com/wastelandforge/warband/internal/repositories/rosters"
	"github.com/wastelandforge/warband/internal/services/warband"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load the card catalog
	cat, err := catalog.LoadFiles(cfg.Catalog.UnitsPath, cfg.Catalog.ItemsPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded catalog: %d units, %d items", len(cat.Units()), len(cat.Items()))

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	repo := rosters.NewInMemoryRepository()

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
			if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
				pingCancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
				redisClient = nil
			} else {
				pingCancel()
				log.Println("Successfully connected to Redis")
				repo = rosters.NewRedisRepository(redisClient)
				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	svc := warband.NewService(&warband.ServiceConfig{
		Repository: repo,
		Catalog:    cat,
	})

	catalogHandler := api.NewCatalogHandler(cat)
	rosterHandler := api.NewRosterHandler(svc, cat)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Catalog API
	mux.HandleFunc("GET /api/catalog/units", catalogHandler.ListUnits)
	mux.HandleFunc("GET /api/catalog/units/{id}", catalogHandler.GetUnit)
	mux.HandleFunc("GET /api/catalog/items", catalogHandler.ListItems)
	mux.HandleFunc("GET /api/catalog/items/{id}", catalogHandler.GetItem)
	mux.HandleFunc("GET /api/catalog/factions", catalogHandler.ListFactions)
	mux.HandleFunc("GET /api/catalog/groups", catalogHandler.ListGroups)

	// Roster API
	mux.HandleFunc("POST /api/rosters", rosterHandler.Create)
	mux.HandleFunc("GET /api/rosters", rosterHandler.List)
	mux.HandleFunc("GET /api/rosters/{id}", rosterHandler.Get)
	mux.HandleFunc("PATCH /api/rosters/{id}", rosterHandler.Update)
	mux.HandleFunc("DELETE /api/rosters/{id}", rosterHandler.Delete)
	mux.HandleFunc("GET /api/rosters/{id}/export", rosterHandler.Export)
	mux.HandleFunc("POST /api/rosters/import", rosterHandler.Import)
	mux.HandleFunc("PUT /api/rosters/{id}/import", rosterHandler.ImportInto)

	// Build mutations
	mux.HandleFunc("POST /api/rosters/{id}/units", rosterHandler.PickUnit)
	mux.HandleFunc("POST /api/rosters/{id}/units/{uid}/duplicate", rosterHandler.DuplicateUnit)
	mux.HandleFunc("DELETE /api/rosters/{id}/units/{uid}", rosterHandler.RemoveUnit)
	mux.HandleFunc("POST /api/rosters/{id}/units/{uid}/cards", rosterHandler.AddItem)
	mux.HandleFunc("DELETE /api/rosters/{id}/units/{uid}/cards/{index}", rosterHandler.RemoveItem)
	mux.HandleFunc("PUT /api/rosters/{id}/units/{uid}/cards/{index}/mod", rosterHandler.ApplyMod)
	mux.HandleFunc("DELETE /api/rosters/{id}/units/{uid}/cards/{index}/mod", rosterHandler.RemoveMod)
	mux.HandleFunc("POST /api/rosters/{id}/units/{uid}/cards/{index}/move", rosterHandler.MoveCard)
	mux.HandleFunc("POST /api/rosters/{id}/units/{uid}/mods", rosterHandler.ApplyModAuto)

	// Availability
	mux.HandleFunc("GET /api/rosters/{id}/units/{uid}/available-items", rosterHandler.AvailableItems)
	mux.HandleFunc("GET /api/rosters/{id}/units/{uid}/cards/{index}/available-mods", rosterHandler.AvailableMods)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
