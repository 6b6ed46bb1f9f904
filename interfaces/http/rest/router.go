package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/application/services"
	"artgraph-backend/infrastructure/config"
	"artgraph-backend/interfaces/http/rest/handlers"
	"artgraph-backend/interfaces/http/rest/middleware"
	"artgraph-backend/pkg/common"
)

// Pinger reports store reachability for the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router creates and configures the HTTP router.
type Router struct {
	cfg       *config.Config
	artists   *services.ArtistService
	artworks  *services.ArtworkService
	graphs    *services.GraphService
	documents ports.DocumentStore
	store     Pinger
	logger    *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(
	cfg *config.Config,
	artists *services.ArtistService,
	artworks *services.ArtworkService,
	graphs *services.GraphService,
	documents ports.DocumentStore,
	store Pinger,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		artists:   artists,
		artworks:  artworks,
		graphs:    graphs,
		documents: documents,
		store:     store,
		logger:    logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.NewRateLimiter(rt.cfg.RateLimitPerMinute, rt.logger).Handler)

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Error-path fallbacks stay inside the wire envelope.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, http.StatusNotFound, "Endpoint not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, http.StatusMethodNotAllowed, "Method not Allowed")
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.cfg.JWTSecret, rt.cfg.JWTIssuer))

		r.Route("/artists", func(r chi.Router) {
			artistHandler := handlers.NewArtistHandler(rt.artists, rt.logger)
			r.Get("/", artistHandler.GetArtists)
			r.Post("/", artistHandler.CreateArtist)
			r.Get("/page/{page}", artistHandler.GetArtistsPage)
			r.Get("/{artistID}", artistHandler.GetArtist)
			r.Put("/{artistID}", artistHandler.UpdateArtist)
			r.Delete("/{artistID}", artistHandler.DeleteArtist)
			r.Get("/{artistID}/artworks", artistHandler.GetArtistArtworks)
			r.Post("/{artistID}/artworks", artistHandler.CreateArtistArtwork)
		})

		r.Route("/artworks", func(r chi.Router) {
			artworkHandler := handlers.NewArtworkHandler(rt.artworks, rt.logger)
			r.Get("/", artworkHandler.GetArtworks)
			r.Post("/", artworkHandler.CreateArtwork)
			r.Get("/page/{page}", artworkHandler.GetArtworksPage)
			r.Get("/{artworkID}", artworkHandler.GetArtwork)
			r.Put("/{artworkID}", artworkHandler.UpdateArtwork)
			r.Delete("/{artworkID}", artworkHandler.DeleteArtwork)
			r.Get("/{artworkID}/inspires", artworkHandler.GetInspired)
			r.Get("/{artworkID}/inspired", artworkHandler.GetInspiredBy)
			r.Get("/{artworkID}/inspirations", artworkHandler.GetInspirations)
			r.Get("/{artworkID}/artist", artworkHandler.GetArtist)
			r.Put("/{artworkID}/artist", artworkHandler.MoveArtist)
			r.Post("/{artworkID}/inspire", artworkHandler.CreateInspire)
			r.Delete("/{artworkID}/inspire/{targetID}", artworkHandler.DeleteInspire)
		})

		r.Route("/graphs", func(r chi.Router) {
			graphHandler := handlers.NewGraphHandler(rt.graphs, rt.logger)
			r.Get("/", graphHandler.GetGraph)
			r.Get("/subgraph/{nodeID}", graphHandler.GetSubgraph)
			r.Get("/filter-options", graphHandler.GetFilterOptions)
		})

		r.Route("/documents", func(r chi.Router) {
			documentHandler := handlers.NewDocumentHandler(rt.documents, rt.cfg.MaxUploadBytes, rt.logger)
			r.Post("/", documentHandler.Upload)
		})
	})

	return router
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready only when the store answers.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := rt.store.Ping(req.Context()); err != nil {
		rt.logger.Warn("readiness check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
