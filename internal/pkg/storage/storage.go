package storage

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned by Get when nothing is stored under the path.
var ErrNotFound = errors.New("file not found")

// Storage defines the interface for blob storage operations.
type Storage interface {
	// Save replaces the content stored at path.
	// Readers never observe a partially written blob.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the content stored at path.
	// Returns an error wrapping ErrNotFound if the path does not exist.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
}

// IsNotFound reports whether err means the blob does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, os.ErrNotExist)
}
