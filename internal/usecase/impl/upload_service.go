package impl

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
	"carmarket/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultContentType = "application/octet-stream"
	defaultExtension   = "bin"
	maxParallelUploads = 4
)

type uploadService struct {
	store     service.ImageStore
	maxBytes  int64
	keyPrefix string
	logger    *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(store service.ImageStore, cfg *config.Config, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{
		store:     store,
		maxBytes:  cfg.Blob.MaxUploadBytes,
		keyPrefix: cfg.Blob.KeyPrefix,
		logger:    logger,
	}
}

// UploadRequestImages rejects the whole batch if any file is over the cap,
// before anything is written.
func (srv *uploadService) UploadRequestImages(ctx context.Context, files []*usecase.UploadFile) ([]*usecase.UploadedImage, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrNoFiles
	}
	for _, file := range files {
		if file.Size > srv.maxBytes {
			return nil, domainerrors.NewFileTooLargeError(file.Filename, util.FormatBytes(srv.maxBytes))
		}
	}

	uploads := make([]*usecase.UploadedImage, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelUploads)
	for i, file := range files {
		group.Go(func() error {
			uploaded, err := srv.put(groupCtx, file)
			if err != nil {
				return err
			}
			uploads[i] = uploaded

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Image upload failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return uploads, nil
}

func (srv *uploadService) put(ctx context.Context, file *usecase.UploadFile) (*usecase.UploadedImage, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	key := srv.keyPrefix + uuid.NewString() + "." + extensionOf(file.Filename, contentType)

	reader, err := file.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", file.Filename)
	}
	defer reader.Close()

	url, err := srv.store.Put(ctx, key, contentType, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", file.Filename)
	}

	return &usecase.UploadedImage{URL: url, Pathname: key}, nil
}

// extensionOf prefers the client's file extension and falls back to the content type.
func extensionOf(filename, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return strings.TrimPrefix(exts[0], ".")
	}

	return defaultExtension
}
