package ports

import (
	"context"
	"io"
)

// DocumentStore persists uploaded files and returns the URL they are
// served from.
type DocumentStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}
