// Package storage holds the object-storage client for post images.
package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"github.com/mdobak/go-xerrors"
)

// Bucket stores objects in a Google Cloud Storage bucket and serves them
// through its public URL space.
type Bucket struct {
	name   string
	client *gcs.Client
}

func NewBucket(ctx context.Context, name string) (*Bucket, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return &Bucket{
		name:   name,
		client: client,
	}, nil
}

func (b *Bucket) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	w := b.client.Bucket(b.name).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", xerrors.New(err)
	}
	if err := w.Close(); err != nil {
		return "", xerrors.New(err)
	}

	return path, nil
}

func (b *Bucket) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.name, path)
}

func (b *Bucket) Close() error {
	return b.client.Close()
}
