package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"videotube_backend/internal/app/config"
)

// Uploader pushes local files to the remote media host and returns a
// durable URL. Failures are deliberately converted to a nil result rather
// than an error: callers must treat nil as "upload failed" and answer with
// a client error. No retry, no backoff.
type Uploader struct {
	cfg    config.MediaConfig
	client *http.Client
}

// NewUploader creates an Uploader with the given configuration and HTTP client.
func NewUploader(cfg config.MediaConfig, client *http.Client) *Uploader {
	return &Uploader{cfg: cfg, client: client}
}

// Upload streams the file at localPath to the media host.
//
//   - Empty or nonexistent path: returns (nil, nil) without any network I/O.
//   - Remote failure: deletes the local temp file and returns (nil, nil).
//   - Success: returns the remote URL and metadata.
func (u *Uploader) Upload(ctx context.Context, localPath string) (*UploadResult, error) {
	if localPath == "" {
		return nil, nil
	}
	f, err := os.Open(localPath)
	if err != nil {
		slog.Warn("media upload skipped, local file unreadable", "path", localPath, "error", err)
		return nil, nil
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close upload file", "error", err)
		}
	}()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return u.fail(localPath, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return u.fail(localPath, err)
	}
	if err := mw.WriteField("resource_type", "auto"); err != nil {
		return u.fail(localPath, err)
	}
	if err := mw.Close(); err != nil {
		return u.fail(localPath, err)
	}

	url := fmt.Sprintf("%s/upload", u.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return u.fail(localPath, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(u.cfg.APIKey, u.cfg.APISecret)

	res, err := u.client.Do(req)
	if err != nil {
		return u.fail(localPath, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return u.fail(localPath, fmt.Errorf("media host http %d", res.StatusCode))
	}

	var result UploadResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return u.fail(localPath, err)
	}

	slog.Info("file uploaded to media host", "url", result.URL, "bytes", result.Bytes)
	return &result, nil
}

// fail removes the local temp file (cleanup guarantee) and swallows the
// error into a nil result.
func (u *Uploader) fail(localPath string, err error) (*UploadResult, error) {
	slog.Warn("media upload failed", "path", localPath, "error", err)
	if rmErr := os.Remove(localPath); rmErr != nil {
		slog.Warn("failed to remove local temp file", "path", localPath, "error", rmErr)
	}
	return nil, nil
}
