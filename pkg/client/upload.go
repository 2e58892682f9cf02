package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"carhire/pkg/model"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxFileSize int64 = 5 * 1024 * 1024

var (
	ErrFileTooLarge = errors.New("File too large. Maximum size is 5MB")
	ErrNotAnImage   = errors.New("Only image files are allowed")
	ErrHTMLResponse = errors.New("Server error: Received HTML response instead of JSON. Please check server logs.")
)

// ServerError carries the {"error": ...} message of a failed upload.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// UploadFile is one image to send. ContentType may be empty; it is then
// derived from the filename extension or the content.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadClient struct {
	httpClient  *HttpClient
	maxFileSize int64
}

func NewUploadClient(baseUrl string) *UploadClient {
	httpClient := NewHttpClient(baseUrl)
	httpClient.HTTPClient.Timeout = 60 * time.Second
	return &UploadClient{
		httpClient:  httpClient,
		maxFileSize: DefaultMaxFileSize,
	}
}

func (c *UploadClient) SetToken(token string) {
	c.httpClient.SetToken(token)
}

// IsImageFile reports whether the file's MIME type is image/*. The type is
// taken from the declared content type, then the extension, then the bytes.
func IsImageFile(file UploadFile) bool {
	return strings.HasPrefix(detectContentType(file), "image/")
}

// IsValidFileSize reports whether size fits under maxSize, or under
// DefaultMaxFileSize when maxSize is not positive.
func IsValidFileSize(size, maxSize int64) bool {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return size <= maxSize
}

func detectContentType(file UploadFile) string {
	if ct := strings.TrimSpace(file.ContentType); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename))); ct != "" {
		return ct
	}
	if len(file.Data) > 0 {
		return mimetype.Detect(file.Data).String()
	}
	return ""
}

func (c *UploadClient) check(file UploadFile) error {
	if !IsImageFile(file) {
		return ErrNotAnImage
	}
	if !IsValidFileSize(int64(len(file.Data)), c.maxFileSize) {
		return ErrFileTooLarge
	}
	return nil
}

func (c *UploadClient) Test(ctx context.Context) (*Response, error) {
	return c.httpClient.do(ctx, http.MethodGet, "/api/upload/test", nil, "", nil)
}

func (c *UploadClient) UploadImage(ctx context.Context, file UploadFile) (*model.UploadedFile, error) {
	if err := c.check(file); err != nil {
		return nil, err
	}

	var out model.UploadedFile
	if err := c.send(ctx, "/api/upload/image", "image", []UploadFile{file}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImages validates every file before anything is sent.
func (c *UploadClient) UploadImages(ctx context.Context, files []UploadFile) (*model.UploadedFiles, error) {
	for _, file := range files {
		if err := c.check(file); err != nil {
			return nil, fmt.Errorf("%s: %w", file.Filename, err)
		}
	}

	var out model.UploadedFiles
	if err := c.send(ctx, "/api/upload/images", "images", files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *UploadClient) send(ctx context.Context, path, field string, files []UploadFile, out any) error {
	body, contentType, err := multipartBody(field, files)
	if err != nil {
		return fmt.Errorf("Upload failed: %w", err)
	}

	resp, err := c.httpClient.do(ctx, http.MethodPost, path, body, contentType, nil)
	if err != nil {
		return fmt.Errorf("Upload failed: %w", err)
	}
	return decodeUploadResponse(resp, out)
}

func multipartBody(field string, files []UploadFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(file.Filename)))
		header.Set("Content-Type", detectContentType(file))
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func decodeUploadResponse(resp *Response, out any) error {
	if isHTML(resp) {
		return ErrHTMLResponse
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var uploadErr model.UploadError
		if err := json.Unmarshal(resp.Body, &uploadErr); err != nil || uploadErr.Error == "" {
			return fmt.Errorf("Upload failed: unexpected status %d", resp.StatusCode)
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: uploadErr.Error}
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("Upload failed: %w", err)
	}
	return nil
}

func isHTML(resp *Response) bool {
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return true
	}
	trimmed := bytes.TrimSpace(resp.Body)
	return bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) || bytes.HasPrefix(trimmed, []byte("<html"))
}
