package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	"artgraph-backend/application/ports"
)

// maxAttempts bounds retries on connectivity failures. Non-connectivity
// errors fail fast.
const maxAttempts = 3

// Execute runs one parameterized query in a single round trip and
// decodes the result rows. Retries are transparent to callers: they see
// either rows or the final error.
func (s *Store) Execute(ctx context.Context, query string, params map[string]any) ([]ports.Record, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params,
			neo4j.EagerResultTransformer,
			neo4j.ExecuteQueryWithDatabase(s.database),
		)
		if err == nil {
			return decodeRecords(result.Records), nil
		}

		lastErr = err
		if !neo4j.IsConnectivityError(err) {
			return nil, err
		}

		s.logger.Warn("query attempt failed on connectivity, rechecking",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if verr := s.driver.VerifyConnectivity(ctx); verr != nil {
			s.logger.Warn("connectivity check failed", zap.Error(verr))
		}
	}
	return nil, lastErr
}

func decodeRecords(records []*neo4j.Record) []ports.Record {
	out := make([]ports.Record, 0, len(records))
	for _, rec := range records {
		row := ports.Record{}
		for i, key := range rec.Keys {
			row[key] = decodeValue(rec.Values[i])
		}
		out = append(out, row)
	}
	return out
}

// decodeValue strips driver types so callers above the boundary never
// see them. Nodes become their property maps; the store-internal node
// identity is always returned explicitly by the queries that need it.
func decodeValue(v any) any {
	switch t := v.(type) {
	case dbtype.Node:
		return decodeProps(t.Props)
	case dbtype.Relationship:
		return decodeProps(t.Props)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = decodeValue(e)
		}
		return out
	case map[string]any:
		return decodeProps(t)
	default:
		return v
	}
}

func decodeProps(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = decodeValue(v)
	}
	return out
}
