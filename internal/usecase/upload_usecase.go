package usecase

import (
	"context"
	"io"
)

// UploadFile is one multipart part waiting to be stored.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadedImage is where a stored file can be fetched.
type UploadedImage struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// UploadUsecase stores reference images for buyer requests.
type UploadUsecase interface {
	UploadRequestImages(ctx context.Context, files []*UploadFile) ([]*UploadedImage, error)
}
