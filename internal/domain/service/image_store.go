package service

import (
	"context"
	"io"
)

// ImageStore stores uploaded images and returns their public URL.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
