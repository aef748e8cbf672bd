// Package objectstore stores audio artifacts in a NATS JetStream object store bucket.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"vocal-feed/pkg/blob"

	"github.com/nats-io/nats.go"
)

// NatsObjectStore publishes the object metadata only after every chunk is
// stored, so readers never observe a partial artifact.
type NatsObjectStore struct {
	bucket string
	store  nats.ObjectStore
}

var _ blob.Store = (*NatsObjectStore)(nil)

// New creates the bucket, or binds to it when it already exists.
func New(js nats.JetStreamContext, bucketName string) (*NatsObjectStore, error) {
	store, err := js.CreateObjectStore(&nats.ObjectStoreConfig{
		Bucket:      bucketName,
		Description: fmt.Sprintf("Audio artifacts for the %s bucket.", bucketName),
		Storage:     nats.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		var bindErr error
		store, bindErr = js.ObjectStore(bucketName)
		if bindErr != nil {
			return nil, fmt.Errorf("failed to create object store bucket '%s': %w", bucketName, err)
		}
	}

	return &NatsObjectStore{bucket: bucketName, store: store}, nil
}

func (n *NatsObjectStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := n.store.GetInfo(key, nats.Context(ctx))
	if err != nil {
		if errors.Is(err, nats.ErrObjectNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object '%s' in bucket '%s': %w", key, n.bucket, err)
	}
	return true, nil
}

func (n *NatsObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	meta := &nats.ObjectMeta{
		Name:    key,
		Headers: nats.Header{},
	}
	if contentType != "" {
		meta.Headers.Set("Content-Type", contentType)
	}

	if _, err := n.store.Put(meta, bytes.NewReader(data), nats.Context(ctx)); err != nil {
		return fmt.Errorf("failed to put object '%s' to bucket '%s': %w", key, n.bucket, err)
	}
	return nil
}

func (n *NatsObjectStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := n.store.Get(key, nats.Context(ctx))
	if err != nil {
		if errors.Is(err, nats.ErrObjectNotFound) {
			return nil, blob.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object '%s' from bucket '%s': %w", key, n.bucket, err)
	}
	return obj, nil
}
