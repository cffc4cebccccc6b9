package media

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"school-backend/internal/shared/server/respond"
	"school-backend/internal/shared/storage/object"
)

// Handler streams stored media objects. It backs the URLs produced by the
// local object store; with S3 it acts as a pass-through proxy.
type Handler struct {
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches the media route to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/media/*key", h.serve)
}

func (h *Handler) serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respond.Error(c, http.StatusNotFound, "Media not found")
		return
	}

	rc, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Media not found")
		return
	}
	defer rc.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(rc, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		respond.Error(c, http.StatusInternalServerError, "Failed to read media")
		return
	}

	c.Header("Content-Type", http.DetectContentType(sniff[:n]))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, io.MultiReader(bytes.NewReader(sniff[:n]), rc))
}
