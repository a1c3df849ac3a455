package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/Lllllllleong/questiongenerator/internal/gcp"
	"github.com/Lllllllleong/questiongenerator/internal/models"
)

// GCSSource loads documents named by gs:// URIs. The storage client is created on first
// use so the service starts without Cloud Storage credentials.
type GCSSource struct {
	maxBytes int64

	once    sync.Once
	client  *storage.Client
	initErr error
}

// NewGCSSource creates a source that rejects objects larger than maxBytes.
func NewGCSSource(maxBytes int64) *GCSSource {
	return &GCSSource{maxBytes: maxBytes}
}

// Fetch downloads the object named by uri.
func (s *GCSSource) Fetch(ctx context.Context, uri string) (*models.Document, error) {
	bucket, object, err := gcp.ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}

	s.once.Do(func() {
		s.client, s.initErr = storage.NewClient(context.Background())
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", s.initErr)
	}

	obj, err := gcp.ReadGCSObject(ctx, s.client, bucket, object, s.maxBytes)
	if err != nil {
		return nil, err
	}
	slog.Info("Fetched document from GCS.", "gcsBucket", bucket, "gcsObject", object, "sizeBytes", len(obj.Data))

	return &models.Document{
		Filename:    path.Base(object),
		ContentType: obj.ContentType,
		Data:        obj.Data,
	}, nil
}
