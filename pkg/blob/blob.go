// Package blob defines the key/value byte store that audio artifacts are
// written to, plus a local filesystem implementation.
package blob

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("blob not found")

// Store holds immutable objects addressed by key. Put must never leave a
// partially written object visible to Exists or Open.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
