package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	uploaderrors "carhire/internal/uploads/errors"
	"carhire/internal/uploads/service"
	httputil "carhire/pkg/http"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const multipartMemory = 8 << 20

// UploadHandler answers with the bare {url, filename}, {urls} and {error}
// shapes the admin forms expect rather than the {data} envelope.
type UploadHandler struct {
	service     service.UploadService
	maxFileSize int64
	maxFiles    int
	log         *logger.Logger
}

func NewUploadHandler(service service.UploadService, maxFileSize int64, maxFiles int, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		service:     service,
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
		log:         log,
	}
}

type testResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Message  string `json:"message"`
}

func (h *UploadHandler) Test(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, testResponse{
		Status:   "ok",
		Provider: h.service.Provider(),
		Message:  "Upload route is working",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Test", "operation", "WriteJSON", "error", err)
	}
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	headers, err := h.parse(r, "image")
	defer h.cleanup(r)
	if err == nil && len(headers) == 0 {
		err = uploaderrors.ErrNoFile
	}
	if err != nil {
		h.writeError(w, "UploadImage", err, "No image file provided", "Failed to upload image")
		return
	}

	file, err := h.read(headers[0])
	if err != nil {
		h.writeError(w, "UploadImage", err, "No image file provided", "Failed to upload image")
		return
	}

	uploaded, err := h.service.Upload(r.Context(), file)
	if err != nil {
		h.writeError(w, "UploadImage", err, "No image file provided", "Failed to upload image")
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, uploaded); err != nil {
		h.log.Error("failed to write JSON response", "handler", "UploadImage", "operation", "WriteJSON", "error", err)
	}
}

func (h *UploadHandler) UploadImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	headers, err := h.parse(r, "images", "images[]")
	defer h.cleanup(r)
	if err != nil {
		h.writeError(w, "UploadImages", err, "No image files provided", "Failed to upload images")
		return
	}
	if len(headers) > h.maxFiles {
		h.writeError(w, "UploadImages", uploaderrors.ErrTooManyFiles, "", "")
		return
	}

	files := make([]service.File, 0, len(headers))
	for _, fh := range headers {
		file, err := h.read(fh)
		if err != nil {
			h.writeError(w, "UploadImages", err, "No image files provided", "Failed to upload images")
			return
		}
		files = append(files, file)
	}

	uploaded, err := h.service.UploadMany(r.Context(), files)
	if err != nil {
		h.writeError(w, "UploadImages", err, "No image files provided", "Failed to upload images")
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, model.UploadedFiles{URLs: uploaded}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "UploadImages", "operation", "WriteJSON", "error", err)
	}
}

// parse reads the multipart form and returns the file parts of the first
// field name that has any.
func (h *UploadHandler) parse(r *http.Request, fields ...string) ([]*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, uploaderrors.ErrFileTooLarge
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, uploaderrors.ErrNoFile
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	for _, field := range fields {
		if headers := r.MultipartForm.File[field]; len(headers) > 0 {
			return headers, nil
		}
	}
	return nil, nil
}

func (h *UploadHandler) cleanup(r *http.Request) {
	if r.MultipartForm == nil {
		return
	}
	if err := r.MultipartForm.RemoveAll(); err != nil {
		h.log.Warn("failed to remove multipart temp files", "error", err)
	}
}

func (h *UploadHandler) read(fh *multipart.FileHeader) (service.File, error) {
	if fh.Size > h.maxFileSize {
		return service.File{}, uploaderrors.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return service.File{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
	if err != nil {
		return service.File{}, fmt.Errorf("failed to read upload: %w", err)
	}

	return service.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *UploadHandler) writeError(w http.ResponseWriter, handler string, err error, noFileMsg, failedMsg string) {
	status := http.StatusBadRequest
	var message string
	switch {
	case errors.Is(err, uploaderrors.ErrFileTooLarge):
		message = fmt.Sprintf("File too large. Maximum size is %dMB", h.maxFileSize>>20)
	case errors.Is(err, uploaderrors.ErrTooManyFiles):
		message = fmt.Sprintf("Too many files. Maximum is %d files", h.maxFiles)
	case errors.Is(err, uploaderrors.ErrNoFile):
		message = noFileMsg
	case errors.Is(err, uploaderrors.ErrNotAnImage):
		message = "Only image files are allowed"
	default:
		status = http.StatusInternalServerError
		message = failedMsg
		h.log.Error("Upload failed", "handler", handler, "error", err)
	}

	if writeErr := httputil.WriteJSON(w, status, model.UploadError{Error: message}); writeErr != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", writeErr)
	}
}

func (h *UploadHandler) RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle) {
	router.GET("/api/upload/test", h.Test)
	router.POST("/api/upload/image", admin(h.UploadImage))
	router.POST("/api/upload/images", admin(h.UploadImages))
}
