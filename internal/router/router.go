package router

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "breed-catalog/internal/adapters/storage/memory"
	pg "breed-catalog/internal/adapters/storage/postgres"
	"breed-catalog/internal/domain/breeds"
	"breed-catalog/internal/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory con el catálogo
	// base sembrado (modo dev / tests).
	DB *sql.DB

	// Opcional: repo explícito, con prioridad sobre DB. Lo usan los tests
	// para sustituir el store.
	Repo breeds.Repository
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recover)

	// El frontend corre en otro origen; sin restricción de origen/headers.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	repo := opts.Repo
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewBreedsRepo(opts.DB)
		} else {
			repo = mem.NewBreedRepo()
			seedMemory(repo)
		}
	}

	svc := breeds.NewService(repo)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler)
		breeds.RegisterRoutes(api, svc)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Catch-all: cualquier ruta (o método) sin handler responde el mismo
	// 404 JSON, nunca el 405 de chi ni HTML.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// healthHandler godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse
// @Router       /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "Pet Breed Management API is running",
	})
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
}

func seedMemory(repo breeds.Repository) {
	ctx := context.Background()
	for _, in := range breeds.Seed() {
		_, _ = repo.Create(ctx, in)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
