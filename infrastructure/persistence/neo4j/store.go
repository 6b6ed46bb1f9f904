// Package neo4j implements the graph-store boundary on top of the
// official Neo4j driver.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Config holds the connection settings for the store.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store owns the driver lifecycle: opened and connectivity-checked at
// process start, closed at shutdown. It is passed into services by
// reference; there is no package-level connection state.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *zap.Logger
}

// NewStore opens a driver and verifies connectivity before returning.
func NewStore(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	return &Store{
		driver:   driver,
		database: cfg.Database,
		logger:   logger,
	}, nil
}

// Ping re-checks connectivity. Used by the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the driver and its pooled connections.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// EnsureIndexes creates the indexes the listing and lookup queries rely
// on. Safe to run at every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []string{
		"CREATE CONSTRAINT artist_id_unique IF NOT EXISTS FOR (a:Artist) REQUIRE a.Ar_ArtistID IS UNIQUE",
		"CREATE CONSTRAINT artwork_id_unique IF NOT EXISTS FOR (aw:Artwork) REQUIRE aw.Art_ArtworkID IS UNIQUE",
		"CREATE CONSTRAINT counter_name_unique IF NOT EXISTS FOR (c:Counter) REQUIRE c.name IS UNIQUE",
		"CREATE INDEX artist_nationality IF NOT EXISTS FOR (a:Artist) ON (a.Ar_Nationality)",
		"CREATE INDEX artwork_medium IF NOT EXISTS FOR (aw:Artwork) ON (aw.Art_Medium)",
	}

	for _, stmt := range indexes {
		if _, err := neo4j.ExecuteQuery(ctx, s.driver, stmt, nil,
			neo4j.EagerResultTransformer,
			neo4j.ExecuteQueryWithDatabase(s.database),
		); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
