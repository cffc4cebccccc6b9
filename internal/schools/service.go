package schools

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"school-backend/internal/shared/metrics"
)

const (
	// DefaultPageSize applies when the caller sends no limit.
	DefaultPageSize = 10
	// MaxPageSize caps the limit a caller may request.
	MaxPageSize = 100
)

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, fileName string, declaredSize int64, r io.Reader) (string, error)
}

// Service contains business logic for schools.
type Service struct {
	Repo     SchoolsRepo
	Uploader ImageUploader
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo SchoolsRepo, uploader ImageUploader) *Service {
	return &Service{
		Repo:     repo,
		Uploader: uploader,
		validate: validator.New(),
	}
}

// CreateInput carries the registration form fields.
type CreateInput struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
	City    string `validate:"required"`
	State   string `validate:"required"`
	Contact string `validate:"required,len=10,numeric"`
	EmailID string `validate:"required,email"`
}

// Create validates the input, uploads the image, then persists the record.
// The upload must succeed before any database write; a failed upload leaves
// no record behind. A failed insert after a successful upload orphans the
// stored object (no compensating delete).
func (s *Service) Create(ctx context.Context, in CreateInput, fileName string, fileSize int64, image io.Reader) (School, error) {
	in = trimInput(in)
	if err := s.validateInput(in); err != nil {
		return School{}, err
	}

	start := time.Now()
	imageURL, err := s.Uploader.Upload(ctx, fileName, fileSize, image)
	metrics.ObserveImageUploadDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncSchoolCreateFailed()
		return School{}, fmt.Errorf("upload image: %w", err)
	}

	school := School{
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Contact:   in.Contact,
		EmailID:   in.EmailID,
		Image:     imageURL,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.Repo.Create(ctx, school)
	if err != nil {
		metrics.IncSchoolCreateFailed()
		return School{}, fmt.Errorf("insert school: %w", err)
	}

	metrics.IncSchoolCreated()
	return created, nil
}

// ListQuery carries listing parameters before clamping.
type ListQuery struct {
	Name  string
	State string
	Page  int
	Limit int
}

// PageResult is one page of schools plus pagination metadata.
type PageResult struct {
	Schools    []School
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// List clamps the page window, applies the filters, and returns the page.
// A page past the end of the result set yields an empty page, not an error.
func (s *Service) List(ctx context.Context, q ListQuery) (PageResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	items, total, err := s.Repo.List(ctx, ListFilter{
		Name:   strings.TrimSpace(q.Name),
		State:  strings.TrimSpace(q.State),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return PageResult{}, fmt.Errorf("list schools: %w", err)
	}

	metrics.IncSchoolListed()
	return PageResult{
		Schools:    items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Get fetches one school by id.
func (s *Service) Get(ctx context.Context, id int64) (School, error) {
	if id <= 0 {
		return School{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

func trimInput(in CreateInput) CreateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Contact = strings.TrimSpace(in.Contact)
	in.EmailID = strings.TrimSpace(in.EmailID)
	return in
}

func (s *Service) validateInput(in CreateInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		return &ValidationError{Reason: reasonFor(fieldErrs[0])}
	}
	return &ValidationError{Reason: "invalid input"}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Contact":
		if fe.Tag() == "required" {
			return "contact is required"
		}
		return "contact must be exactly 10 digits"
	case "EmailID":
		if fe.Tag() == "required" {
			return "email_id is required"
		}
		return "email_id must be a valid email address"
	default:
		return strings.ToLower(fe.Field()) + " is required"
	}
}
