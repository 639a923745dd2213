package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=upload.go -destination=mock_upload.go -package=handlers

// multipartOverhead is allowed on top of the file limit for form framing.
const multipartOverhead = 1 << 20

// ImageUploader stores uploaded images.
type ImageUploader interface {
	SaveHostImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	MaxBytes() int64
}

// UploadResponse carries the public path of a stored file.
// swagger:model UploadResponse
type UploadResponse struct {
	// default: /uploads/hosts/3f1c9a4e-0b7d-4a8e-9a55-5f3a2b1c0d9e.jpg
	URL string `json:"url"`
}

// NewUploadHostImageHandler stores a host image sent as the multipart field "image".
// @Summary Upload a host image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "File must be an image / too large"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Missing image field"
// @Failure 500 {object} handlers.ErrorResponse "Failed to upload image"
// @Router /upload/host-image [post]
// @Security BearerAuth
func NewUploadHostImageHandler(svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		maxBytes := svc.MaxBytes()
		tooLarge := fmt.Sprintf("File size must be less than %dMB", maxBytes>>20)

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		file, header, err := r.FormFile("image")
		if err != nil {
			var sizeErr *http.MaxBytesError
			if errors.As(err, &sizeErr) {
				writeError(w, http.StatusBadRequest, tooLarge)
				return
			}
			writeError(w, http.StatusUnprocessableEntity, "image: field required")
			return
		}
		defer file.Close()

		if header.Size > maxBytes {
			writeError(w, http.StatusBadRequest, tooLarge)
			return
		}

		url, err := svc.SaveHostImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAnImage):
				writeError(w, http.StatusBadRequest, "File must be an image")
			case errors.Is(err, services.ErrFileTooLarge):
				writeError(w, http.StatusBadRequest, tooLarge)
			default:
				logger.Log.Errorw("failed to upload image", "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to upload image")
			}
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{URL: url})
	}
}

