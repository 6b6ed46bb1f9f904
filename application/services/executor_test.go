package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"artgraph-backend/application/ports"
)

// fakeExecutor scripts the store boundary for service tests. Each call
// is recorded; the respond function decides the outcome.
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []executedQuery
	respond func(query string, params map[string]any) ([]ports.Record, error)
}

type executedQuery struct {
	query  string
	params map[string]any
}

func (f *fakeExecutor) Execute(ctx context.Context, query string, params map[string]any) ([]ports.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, executedQuery{query: query, params: params})
	respond := f.respond
	f.mu.Unlock()
	if respond == nil {
		return []ports.Record{}, nil
	}
	return respond(query, params)
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeExecutor) lastCall() executedQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
