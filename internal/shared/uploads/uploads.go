// Package uploads handles temporary storage of multipart file uploads and
// the moderate-then-push flow to the media host.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"videotube_backend/internal/platform/media"
	"videotube_backend/internal/platform/moderation"
)

// ErrImageRejected is returned by PushImage when moderation flags the image.
var ErrImageRejected = errors.New("image rejected by moderation")

// Uploader pushes a local file to the media host. A nil result with a nil
// error means the upload failed.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (*media.UploadResult, error)
}

// Moderator screens image bytes before upload.
type Moderator interface {
	Check(ctx context.Context, imageData []byte) error
}

// SaveTemp writes the uploaded file to a unique path under the OS temp
// directory and returns that path. The media uploader removes the file on
// upload failure; on success it is left for the OS to reap.
func SaveTemp(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("upload-%d-%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
	dst := filepath.Join(os.TempDir(), name)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return dst, nil
}

// PushImage saves the multipart file to a temp path, screens it when a
// moderator is configured, and pushes it to the media host. An empty URL
// with a nil error means the upload failed upstream (the deliberate
// nil-result conversion); ErrImageRejected means moderation refused it.
func PushImage(c *gin.Context, fh *multipart.FileHeader, uploader Uploader, moderator Moderator) (string, error) {
	localPath, err := SaveTemp(c, fh)
	if err != nil {
		return "", err
	}

	if moderator != nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return "", fmt.Errorf("failed to read uploaded file: %w", err)
		}
		if err := moderator.Check(c.Request.Context(), data); err != nil {
			if errors.Is(err, moderation.ErrImageRejected) {
				return "", ErrImageRejected
			}
			// Moderation outage must not block uploads.
			slog.Warn("image moderation unavailable", "error", err)
		}
	}

	result, err := uploader.Upload(c.Request.Context(), localPath)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return result.URL, nil
}
