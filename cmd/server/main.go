package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brewnote/cafe-menu/internal/auth"
	"github.com/brewnote/cafe-menu/internal/config"
	"github.com/brewnote/cafe-menu/internal/handlers"
	"github.com/brewnote/cafe-menu/internal/middleware"
	"github.com/brewnote/cafe-menu/internal/storage"
	"github.com/brewnote/cafe-menu/internal/storage/memory"
	"github.com/brewnote/cafe-menu/internal/storage/sqlite"
	"github.com/brewnote/cafe-menu/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded", "config", cfg)

	// Pick the storage backend: SQLite when a path is configured, the
	// seeded in-memory store otherwise.
	var store storage.Store
	if cfg.Store.Path != "" {
		store, err = sqlite.New(cfg.Store.Path)
		if err != nil {
			slog.Error("Failed to initialize storage", "error", err)
			os.Exit(1)
		}
		slog.Info("Storage initialized", "backend", "sqlite", "database", cfg.Store.Path)
	} else {
		store = memory.New()
		slog.Info("Storage initialized", "backend", "memory")
	}
	defer store.Close()

	creds := auth.NewCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.AdminHash)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	menuHandler := handlers.NewMenuHandler(store)
	authHandler := handlers.NewAuthHandler(creds, tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging())
	r.Use(middleware.Metrics())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.TokenHeader},
		MaxAge:         300,
	}))

	// Public reads
	r.Get("/api/menu", menuHandler.ListItems)
	r.Get("/api/categories", menuHandler.ListCategories)

	// Login
	r.Post("/api/admin/login", authHandler.Login)

	// Guarded writes
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(tokens))

		r.Post("/api/admin/menu", menuHandler.CreateItem)
		r.Put("/api/admin/menu/{id}", menuHandler.UpdateItem)
		r.Delete("/api/admin/menu/{id}", menuHandler.DeleteItem)

		r.Post("/api/admin/categories", menuHandler.CreateCategory)
		r.Delete("/api/admin/categories/{name}", menuHandler.DeleteCategory)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Everything else is static content: the public menu page and the
	// admin page.
	staticDir, err := filepath.Abs(cfg.Server.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	r.NotFound(staticHandler(staticDir))

	addr := ":" + cfg.Server.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// staticHandler serves files from dir, mapping "/" to index.html and bare
// paths like /admin to their .html file.
func staticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean(urlPath))
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			// /admin -> admin.html
			if info, err := os.Stat(filePath + ".html"); err == nil && !info.IsDir() {
				http.ServeFile(w, r, filePath+".html")
				return
			}
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, filePath)
	}
}
