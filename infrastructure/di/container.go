package di

import (
	"context"

	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/application/services"
	"artgraph-backend/infrastructure/config"
	neo4jstore "artgraph-backend/infrastructure/persistence/neo4j"
)

// Container holds all application dependencies.
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Store          *neo4jstore.Store
	ArtistService  *services.ArtistService
	ArtworkService *services.ArtworkService
	GraphService   *services.GraphService
	DocumentStore  ports.DocumentStore
}

// InitializeContainer creates a fully wired container.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	store, err := ProvideStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	executor := ProvideExecutor(store)

	documents, err := ProvideDocumentStore(cfg, logger)
	if err != nil {
		store.Close(ctx)
		return nil, err
	}

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Store:          store,
		ArtistService:  services.NewArtistService(executor, logger),
		ArtworkService: services.NewArtworkService(executor, logger),
		GraphService:   services.NewGraphService(executor, logger),
		DocumentStore:  documents,
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close(ctx context.Context) error {
	return c.Store.Close(ctx)
}
