// Package storage keeps uploaded images in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"carmarket/config"
	"carmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through blob.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Blob

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobImageStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobImageStore wraps an open bucket. URLs are publicBaseURL joined with the object key.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put streams r into the bucket under key and returns the object's public URL.
func (s *blobImageStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}
