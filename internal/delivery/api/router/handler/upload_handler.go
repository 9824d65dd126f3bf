package handler

import (
	"io"
	"log/slog"
	"mime/multipart"

	"carmarket/internal/delivery/api/response"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFileField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts reference images for buyer requests.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadRequestImages stores every "file" part of a multipart body
func (h *UploadHandler) UploadRequestImages(c echo.Context) error {
	multipartForm, err := c.MultipartForm()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoFiles)
	}

	headers := multipartForm.File[uploadFileField]
	files := make([]*usecase.UploadFile, 0, len(headers))
	for _, header := range headers {
		files = append(files, uploadFile(header))
	}

	uploaded, err := h.uploadUC.UploadRequestImages(c.Request().Context(), files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, uploaded)
}

func uploadFile(header *multipart.FileHeader) *usecase.UploadFile {
	return &usecase.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}
