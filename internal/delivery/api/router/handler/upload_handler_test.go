package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	domainerrors "carmarket/internal/domain/errors"
	mockUC "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, files map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile(uploadFileField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func createTestUploadHandler(t *testing.T) (*UploadHandler, *mockUC.MockUploadUsecase) {
	t.Helper()

	uploadUC := mockUC.NewMockUploadUsecase(t)

	return NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: testLogger()}), uploadUC
}

func TestUploadHandler_UploadRequestImages(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, uploadUC := createTestUploadHandler(t)
		body, contentType := multipartBody(t, map[string]string{"front.jpg": "jpeg-bytes"})

		uploadUC.EXPECT().
			UploadRequestImages(mock.Anything, mock.MatchedBy(func(files []*usecase.UploadFile) bool {
				if len(files) != 1 || files[0].Filename != "front.jpg" || files[0].Size != int64(len("jpeg-bytes")) {
					return false
				}
				reader, err := files[0].Open()
				if err != nil {
					return false
				}
				defer reader.Close()
				content, err := io.ReadAll(reader)

				return err == nil && string(content) == "jpeg-bytes"
			})).
			Return([]*usecase.UploadedImage{{URL: "https://cdn/buyer-requests/x.jpg", Pathname: "buyer-requests/x.jpg"}}, nil)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/uploads/request-images",
			body:        body,
			contentType: contentType,
			userID:      "buyer-1",
		}, h.UploadRequestImages)

		require.Equal(t, http.StatusOK, rec.Code)
		images := decodeData[[]usecase.UploadedImage](t, decodeEnvelope(t, rec))
		require.Len(t, images, 1)
		assert.Equal(t, "buyer-requests/x.jpg", images[0].Pathname)
	})

	t.Run("NotMultipart", func(t *testing.T) {
		h, _ := createTestUploadHandler(t)

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/uploads/request-images",
			body:        bytes.NewReader([]byte(`{}`)),
			contentType: echo.MIMEApplicationJSON,
			userID:      "buyer-1",
		}, h.UploadRequestImages)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NO_FILES", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("TooLarge", func(t *testing.T) {
		h, uploadUC := createTestUploadHandler(t)
		body, contentType := multipartBody(t, map[string]string{"huge.jpg": "x"})

		uploadUC.EXPECT().
			UploadRequestImages(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewFileTooLargeError("huge.jpg", "5.0 MB"))

		rec := serve(t, testCall{
			method:      http.MethodPost,
			target:      "/api/v1/uploads/request-images",
			body:        body,
			contentType: contentType,
			userID:      "buyer-1",
		}, h.UploadRequestImages)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "FILE_TOO_LARGE", env.Error.Code)
		assert.Equal(t, "huge.jpg er større enn 5.0 MB", env.Error.Message)
		assert.JSONEq(t, `{"file":"huge.jpg","limit":"5.0 MB"}`, string(env.Error.Details))
	})
}
