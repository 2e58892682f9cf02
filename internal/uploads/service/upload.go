package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	uploaderrors "carhire/internal/uploads/errors"
	"carhire/pkg/config"
	"carhire/pkg/imaging"
	"carhire/pkg/metrics"
	"carhire/pkg/model"
	"carhire/pkg/storage"

	"github.com/google/uuid"
)

const (
	keyPrefix    = "cars"
	cacheControl = "public, max-age=31536000, immutable"
)

// File is one uploaded multipart part, fully read.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadService interface {
	Upload(ctx context.Context, file File) (*model.UploadedFile, error)
	UploadMany(ctx context.Context, files []File) ([]model.UploadedFile, error)
	Provider() string
}

type uploadService struct {
	storage storage.Storage
	metrics *metrics.Metrics
	cfg     *config.Config
	now     func() time.Time
}

func NewUploadService(store storage.Storage, m *metrics.Metrics, cfg *config.Config) UploadService {
	return &uploadService{
		storage: store,
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *uploadService) Provider() string {
	return s.storage.Name()
}

// check validates a file without storing it: it must fit the size ceiling,
// declare an image type and sniff as an image.
func (s *uploadService) check(file File) (string, error) {
	if int64(len(file.Data)) > s.cfg.UploadMaxFileSize {
		return "", uploaderrors.ErrFileTooLarge
	}
	if !imaging.IsImageMIME(file.ContentType) {
		return "", fmt.Errorf("%w: declared %q", uploaderrors.ErrNotAnImage, file.ContentType)
	}
	sniffed := imaging.Detect(file.Data)
	if !imaging.IsImageMIME(sniffed) {
		return "", fmt.Errorf("%w: content is %q", uploaderrors.ErrNotAnImage, sniffed)
	}
	return sniffed, nil
}

func (s *uploadService) Upload(ctx context.Context, file File) (*model.UploadedFile, error) {
	mimeType, err := s.check(file)
	if err != nil {
		s.cfg.Log.Warn("Rejected upload", "filename", file.Filename, "size", len(file.Data), "error", err)
		return nil, err
	}

	data, resized, err := imaging.Normalize(file.Data, mimeType, imaging.Options{
		MaxWidth:    s.cfg.ImageMaxWidth,
		MaxHeight:   s.cfg.ImageMaxHeight,
		JPEGQuality: s.cfg.ImageJPEGQuality,
	})
	if err != nil {
		s.cfg.Log.Warn("Rejected undecodable image", "filename", file.Filename, "error", err)
		return nil, fmt.Errorf("%w: %v", uploaderrors.ErrNotAnImage, err)
	}

	filename := s.filename(mimeType)
	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:          path.Join(keyPrefix, filename),
		Reader:       bytes.NewReader(data),
		ContentType:  mimeType,
		Size:         int64(len(data)),
		Metadata:     map[string]string{"original-filename": file.Filename},
		CacheControl: cacheControl,
	})
	if err != nil {
		s.cfg.Log.Error("Failed to store upload",
			"provider", s.storage.Name(),
			"filename", filename,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", uploaderrors.ErrStorageFailed, err)
	}

	if s.metrics != nil {
		s.metrics.UploadedBytes.Add(float64(len(data)))
	}

	s.cfg.Log.Info("Image uploaded successfully",
		"provider", s.storage.Name(),
		"filename", filename,
		"size", len(data),
		"resized", resized,
	)

	return &model.UploadedFile{URL: resp.URL, Filename: filename}, nil
}

// UploadMany checks every file before storing any of them, so one bad file
// rejects the whole batch.
func (s *uploadService) UploadMany(ctx context.Context, files []File) ([]model.UploadedFile, error) {
	if len(files) == 0 {
		return nil, uploaderrors.ErrNoFile
	}
	if len(files) > s.cfg.UploadMaxFiles {
		return nil, uploaderrors.ErrTooManyFiles
	}
	for _, file := range files {
		if _, err := s.check(file); err != nil {
			s.cfg.Log.Warn("Rejected upload batch", "filename", file.Filename, "files", len(files), "error", err)
			return nil, err
		}
	}

	uploaded := make([]model.UploadedFile, 0, len(files))
	for _, file := range files {
		result, err := s.Upload(ctx, file)
		if err != nil {
			s.rollback(ctx, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, *result)
	}
	return uploaded, nil
}

// rollback removes files stored earlier in a batch that failed part way.
func (s *uploadService) rollback(ctx context.Context, uploaded []model.UploadedFile) {
	ctx = context.WithoutCancel(ctx)
	for _, file := range uploaded {
		if err := s.storage.Delete(ctx, path.Join(keyPrefix, file.Filename)); err != nil {
			s.cfg.Log.Error("Failed to roll back batch upload",
				"provider", s.storage.Name(),
				"filename", file.Filename,
				"error", err,
			)
		}
	}
}

// filename is <unix-ms>-<first 8 chars of a uuid><ext>.
func (s *uploadService) filename(mimeType string) string {
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString()[:8], imaging.Extension(mimeType))
}
