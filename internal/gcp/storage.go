package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// ErrObjectTooLarge is returned when a GCS object exceeds the caller's size limit.
var ErrObjectTooLarge = errors.New("object exceeds the upload size limit")

// GCSObject is the content and metadata of a downloaded object.
type GCSObject struct {
	ContentType string
	Data        []byte
}

// ParseGCSURI splits a gs://bucket/object URI into its bucket and object name.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "gs://")
	if !ok {
		return "", "", fmt.Errorf("invalid GCS URI %q: must start with gs://", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid GCS URI %q: expected gs://bucket/object", uri)
	}
	return bucket, object, nil
}

// ReadGCSObject downloads a whole object into memory. Objects larger than maxBytes are
// rejected before any content is read; maxBytes <= 0 disables the check.
func ReadGCSObject(ctx context.Context, client *storage.Client, bucket, object string, maxBytes int64) (*GCSObject, error) {
	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, describeGCSError(bucket, object, err)
	}
	defer reader.Close()

	data, err := readLimited(reader, reader.Attrs.Size, maxBytes)
	if err != nil {
		if !errors.Is(err, ErrObjectTooLarge) {
			slog.Error("Failed to read GCS object", "gcsBucket", bucket, "gcsObject", object, "error", err)
		}
		return nil, fmt.Errorf("gs://%s/%s: %w", bucket, object, err)
	}

	return &GCSObject{
		ContentType: reader.Attrs.ContentType,
		Data:        data,
	}, nil
}

// readLimited reads src to the end. An object whose declared size exceeds maxBytes is
// rejected without reading; a body that runs past maxBytes is rejected after at most
// maxBytes+1 bytes.
func readLimited(src io.Reader, declaredSize, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(src)
	}
	if declaredSize > maxBytes {
		return nil, fmt.Errorf("%d bytes: %w", declaredSize, ErrObjectTooLarge)
	}
	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrObjectTooLarge
	}
	return data, nil
}

func describeGCSError(bucket, object string, err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("gs://%s/%s does not exist: %w", bucket, object, err)
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("access to gs://%s/%s was denied: %w", bucket, object, err)
		case http.StatusNotFound:
			return fmt.Errorf("gs://%s/%s does not exist: %w", bucket, object, err)
		}
	}
	return fmt.Errorf("failed to get GCS object reader for gs://%s/%s: %w", bucket, object, err)
}
