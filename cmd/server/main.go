package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nightjarhq/nightjar/internal/api"
	"github.com/nightjarhq/nightjar/internal/db"
	"github.com/nightjarhq/nightjar/internal/logger"
	"github.com/nightjarhq/nightjar/internal/middleware"
	"github.com/nightjarhq/nightjar/internal/services"
	"github.com/nightjarhq/nightjar/internal/utils"
)

func main() {
	addr := utils.SafeEnv("NIGHTJAR_ADDR", ":8080")
	commit := os.Getenv("NIGHTJAR_COMMIT")
	buildTime := os.Getenv("NIGHTJAR_BUILD_TIME")

	log, err := logger.New(utils.SafeEnv("NIGHTJAR_LOG_MODE", "prod"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store, err := openStore(log)
	if err != nil {
		log.Fatal("open store", "error", err)
	}

	if utils.SafeEnv("NIGHTJAR_SEED", "true") == "true" {
		if err := store.SeedCatalog(services.DefaultCatalog()); err != nil {
			log.Fatal("seed catalog", "error", err)
		}
	}

	router := api.NewRouter(store, log)
	bootstrapAdmin(router, store, log)

	mux := http.NewServeMux()
	router.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "Nightjar API",
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	handler := middleware.CORS(middleware.SecureHeaders(middleware.NoStore(middleware.WithAuth(mux))))

	log.Info("nightjar server listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server error", "error", err)
	}
}

// openStore opens the SQLite-backed store when NIGHTJAR_SQLITE_PATH is set,
// otherwise falls back to the in-memory store.
func openStore(log *logger.Logger) (db.Store, error) {
	path := os.Getenv("NIGHTJAR_SQLITE_PATH")
	if path == "" {
		log.Info("NIGHTJAR_SQLITE_PATH not set, using in-memory store")
		return db.NewMemoryStore(), nil
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(sqlDB, os.Getenv("NIGHTJAR_MIGRATIONS_DIR")); err != nil {
		return nil, err
	}
	return db.NewSQLiteStore(sqlDB, log)
}

// bootstrapAdmin creates the initial admin account if the configured email is
// not registered yet.
func bootstrapAdmin(router *api.Router, store db.Store, log *logger.Logger) {
	email := os.Getenv("NIGHTJAR_ADMIN_EMAIL")
	password := os.Getenv("NIGHTJAR_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	existing, err := store.FindUserByEmail(email)
	if err != nil {
		log.Warn("admin bootstrap lookup failed", "error", err)
		return
	}
	if existing != nil {
		return
	}
	if _, err := router.RegisterAdmin(email, password); err != nil {
		log.Warn("admin bootstrap failed", "error", err)
		return
	}
	log.Info("admin account created", "email", email)
}
