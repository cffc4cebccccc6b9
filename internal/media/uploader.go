package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"school-backend/internal/shared/storage/object"
	"school-backend/internal/shared/telemetry"
)

var (
	// ErrNotImage reports a file whose sniffed content type is not image/*.
	ErrNotImage = errors.New("file is not an image")
	// ErrTooLarge reports a file exceeding the configured size limit.
	ErrTooLarge = errors.New("image exceeds size limit")
)

// Uploader stores image files in an object store and returns their public URL.
// The image gate (type and size) runs before any bytes reach the store; a
// file caught only by the post-write size check is deleted from the store.
type Uploader struct {
	Store    object.ObjectStore
	BaseURL  string
	Folder   string
	MaxBytes int64
}

// Upload validates and stores the image, returning its public URL.
// declaredSize is the client-declared length and is checked up front; the
// stored byte count is verified against the limit again after the write, and
// an object that slipped past the declared-size check is deleted before the
// rejection is returned.
func (u *Uploader) Upload(ctx context.Context, fileName string, declaredSize int64, r io.Reader) (string, error) {
	if u.MaxBytes > 0 && declaredSize > u.MaxBytes {
		return "", ErrTooLarge
	}

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("read image: %w", readErr)
	}
	if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
		return "", ErrNotImage
	}

	body := io.MultiReader(bytes.NewReader(sniff[:n]), r)
	storageKey, size, _, err := u.Store.Save(ctx, u.Folder, fileName, body)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	if storageKey == "" {
		return "", errors.New("object store returned empty storage key")
	}
	if u.MaxBytes > 0 && size > u.MaxBytes {
		// The declared size lied; remove the oversized object before rejecting.
		if delErr := u.Store.Delete(ctx, storageKey); delErr != nil {
			telemetry.Error("media.delete_oversized", map[string]any{
				"storage_key": storageKey,
				"error":       delErr.Error(),
			})
		}
		return "", ErrTooLarge
	}

	return strings.TrimRight(u.BaseURL, "/") + "/" + strings.TrimLeft(storageKey, "/"), nil
}
