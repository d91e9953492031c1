package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"menagerie"
)

// Service is the boundary the handlers call into.
type Service interface {
	List(ctx context.Context, q menagerie.ListQuery) ([]menagerie.Animal, error)
	Get(ctx context.Context, id string) (menagerie.Animal, error)
	Create(ctx context.Context, candidate map[string]any) (menagerie.Animal, error)
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	// StaticDir is the directory served for non-API paths.
	// Empty disables static pages; non-API requests then get the 404 page.
	StaticDir string
	CORS      CORSConfig
}

// Handler provides HTTP handlers for the animal collection API and the
// accompanying static pages.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with the API mounted under /api/animals and
// static pages everywhere else.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recover)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Route("/api/animals", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{animalID}", h.handleGet)
	})

	r.NotFound(h.handleStatic)

	return r
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := menagerie.ListQueryFromValues(r.URL.Query())

	animals, err := h.service.List(r.Context(), q)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, animals)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "animalID")

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, menagerie.ErrNotFound) {
			// Absence is signaled with a bare status and no body.
			w.WriteHeader(http.StatusNotFound)
		} else {
			HandleError(w, err)
		}
		return
	}

	_ = WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var candidate map[string]any
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_json", "Request body must be a JSON object")
		return
	}

	a, err := h.service.Create(r.Context(), candidate)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusCreated, a)
}
