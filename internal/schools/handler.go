package schools

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"school-backend/internal/media"
	"school-backend/internal/shared/server/respond"
)

// formOverheadBytes leaves room for the multipart framing and text fields on
// top of the image size cap.
const formOverheadBytes = 512 << 10

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	maxBody int64
}

// NewHandler constructs a Handler. maxImageBytes bounds the accepted image
// size and, with form overhead, the whole request body.
func NewHandler(svc *Service, maxImageBytes int64) *Handler {
	return &Handler{Svc: svc, maxBody: maxImageBytes + formOverheadBytes}
}

// RegisterRoutes attaches school routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schools", h.list)
	rg.POST("/schools", h.create)
	rg.GET("/schools/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	result, err := h.Svc.List(c.Request.Context(), ListQuery{
		Name:  c.Query("name"),
		State: c.Query("state"),
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", DefaultPageSize),
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch schools")
		return
	}

	respond.OK(c, ListResponse{
		Success: true,
		Data:    toResponseList(result.Schools),
		Pagination: Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)

	in := CreateInput{
		Name:    c.PostForm("name"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		State:   c.PostForm("state"),
		Contact: c.PostForm("contact"),
		EmailID: c.PostForm("email_id"),
	}
	fileHeader, fileErr := c.FormFile("image")
	if fileErr != nil {
		var maxErr *http.MaxBytesError
		if errors.As(fileErr, &maxErr) {
			respond.BadRequest(c, "image exceeds the size limit")
			return
		}
		respond.BadRequest(c, "Missing required fields")
		return
	}
	if anyBlank(in) {
		respond.BadRequest(c, "Missing required fields")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.BadRequest(c, "Unable to read image file")
		return
	}
	defer file.Close()

	school, err := h.Svc.Create(c.Request.Context(), in, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.BadRequest(c, vErr.Reason)
		case errors.Is(err, media.ErrNotImage):
			respond.BadRequest(c, "image must be an image file")
		case errors.Is(err, media.ErrTooLarge):
			respond.BadRequest(c, "image exceeds the size limit")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to add school")
		}
		return
	}

	c.Set("schoolId", school.ID)
	respond.Created(c, "School Added successfully!")
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.BadRequest(c, "invalid school id")
		return
	}

	school, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "School not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch school")
		return
	}

	respond.OK(c, GetResponse{Success: true, Data: toResponse(school)})
}

func anyBlank(in CreateInput) bool {
	for _, v := range []string{in.Name, in.Address, in.City, in.State, in.Contact, in.EmailID} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
