// Package storage implements the document store on the local
// filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStore writes uploads under a base directory. Files get a random
// name so client-supplied names never touch the filesystem.
type LocalStore struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(dir, baseURL string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Save streams the upload to disk and returns its public URL. Only the
// extension of the original name is kept.
func (s *LocalStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	target := filepath.Join(s.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("writing upload: %w", err)
	}

	s.logger.Debug("document stored", zap.String("file", name))
	return s.baseURL + "/" + path.Join("documents", name), nil
}
