// Package di wires the application dependencies.
package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/application/services"
	"artgraph-backend/infrastructure/config"
	neo4jstore "artgraph-backend/infrastructure/persistence/neo4j"
	"artgraph-backend/infrastructure/storage"
)

// SuperSet is the provider set for wire-based regeneration of the
// container initializer.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideStore,
	ProvideExecutor,
	ProvideDocumentStore,
	services.NewArtistService,
	services.NewArtworkService,
	services.NewGraphService,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideStore opens the Neo4j store and verifies connectivity.
func ProvideStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*neo4jstore.Store, error) {
	return neo4jstore.NewStore(ctx, neo4jstore.Config{
		URI:      cfg.Neo4jURI,
		Username: cfg.Neo4jUsername,
		Password: cfg.Neo4jPassword,
		Database: cfg.Neo4jDatabase,
	}, logger)
}

// ProvideExecutor exposes the store as the query-executor port.
func ProvideExecutor(store *neo4jstore.Store) ports.Executor {
	return store
}

// ProvideDocumentStore creates the local document store.
func ProvideDocumentStore(cfg *config.Config, logger *zap.Logger) (ports.DocumentStore, error) {
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL, logger)
}
