// cmd/api/main.go
// Main entry point for the fusion scoring API
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imadgeboyega/destiny-fusion/internal/cache"
	"github.com/imadgeboyega/destiny-fusion/internal/common/database"
	"github.com/imadgeboyega/destiny-fusion/internal/common/utils"
	"github.com/imadgeboyega/destiny-fusion/internal/config"
	"github.com/imadgeboyega/destiny-fusion/internal/fusion"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Destiny Fusion API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load and validate configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 3. Result cache
	log.Printf("\n📮 Step 3: Initializing %s result cache...", cfg.CacheBackend)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	backend, closer, cleaner := newCacheBackend(ctx, cfg)
	defer closer.Close()

	resultCache := cache.New(backend, cache.Config{
		TTL:     cfg.CacheTTL,
		Timeout: cfg.CacheTimeout,
		Enabled: cfg.CacheEnabled,
	})
	if cleaner != nil {
		cache.NewScheduler(cleaner, cfg.CacheCleanupInterval).Start(ctx)
		log.Printf("   ✅ Expired entry cleanup every %s", cfg.CacheCleanupInterval)
	}
	if !cfg.CacheEnabled {
		log.Println("   ⚠️  Cache disabled, every request is computed")
	}
	log.Printf("✅ Result cache ready (%s)", backend.Name())

	// 4. Fusion service
	log.Println("\n🔮 Step 4: Initializing fusion service...")
	fusionService := fusion.NewService(resultCache, cfg.MatrixTopInsights)
	fusionHandler := fusion.NewHandler(fusionService)
	log.Println("✅ Fusion service initialized")

	// 5. Routes
	log.Println("\n🛣️  Step 5: Setting up routes...")
	router := newRouter(fusionHandler)
	log.Println("✅ Routes registered")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newCacheBackend connects the configured backend. An unreachable remote store degrades to
// the in-process LRU so the API keeps serving. cleaner is non-nil only for postgres.
func newCacheBackend(ctx context.Context, cfg *config.Config) (cache.Backend, io.Closer, cache.Cleaner) {
	switch cfg.CacheBackend {
	case config.BackendNone:
		return cache.NoopBackend{}, nopCloser{}, nil

	case config.BackendRedis:
		client, err := database.NewRedisClientFromURL(ctx, cfg.RedisURL, cfg.CacheTimeout)
		if err != nil {
			log.Printf("⚠️  Redis unavailable: %v, continuing with in-memory cache", err)
			break
		}
		log.Println("   ✅ Connected to Redis successfully")
		return cache.NewRedisBackend(client, cfg.CacheKeyPrefix), client, nil

	case config.BackendPostgres:
		db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL, database.DefaultPostgresPool)
		if err != nil {
			log.Printf("⚠️  PostgreSQL unavailable: %v, continuing with in-memory cache", err)
			break
		}
		pg := cache.NewPostgresBackend(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("⚠️  Cache table setup failed: %v, continuing with in-memory cache", err)
			db.Close()
			break
		}
		log.Println("   ✅ Connected to PostgreSQL successfully")
		return pg, db, pg
	}

	mem, err := cache.NewMemoryBackend(cfg.CacheMaxEntries)
	if err != nil {
		log.Fatal("❌ Failed to create in-memory cache:", err)
	}
	return mem, nopCloser{}, nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, http.StatusNotFound, "route not found: "+r.URL.Path)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
}

// newRouter mounts the fusion API next to the health, metrics and info endpoints
func newRouter(fusionHandler *fusion.Handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.PathPrefix(fusion.BasePath).Handler(fusion.NewRouter(fusionHandler))
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)
	return router
}
