package schools

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

type fakeRepo struct {
	createCalls int
	lastCreated School
	created     School
	createErr   error

	listItems []School
	listTotal int
	listErr   error
	lastList  ListFilter
}

func (f *fakeRepo) Create(ctx context.Context, school School) (School, error) {
	f.createCalls++
	f.lastCreated = school
	if f.createErr != nil {
		return School{}, f.createErr
	}
	created := school
	created.ID = f.created.ID
	return created, nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]School, int, error) {
	f.lastList = filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listItems, f.listTotal, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (School, error) {
	return School{}, ErrNotFound
}

type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, fileName string, declaredSize int64, r io.Reader) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func validInput() CreateInput {
	return CreateInput{
		Name:    "Green Valley",
		Address: "123 Main St",
		City:    "Mumbai",
		State:   "Maharashtra",
		Contact: "9876543210",
		EmailID: "a@b.com",
	}
}

func TestCreatePersistsUploadedImageURL(t *testing.T) {
	repo := &fakeRepo{created: School{ID: 3}}
	uploader := &fakeUploader{url: "http://localhost:8080/media/schoolImages/x.jpg"}
	svc := NewService(repo, uploader)

	school, err := svc.Create(context.Background(), validInput(), "x.jpg", 32, bytes.NewReader([]byte("img")))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if school.ID != 3 {
		t.Fatalf("expected id 3, got %d", school.ID)
	}
	if school.Image != uploader.url {
		t.Fatalf("expected image %q, got %q", uploader.url, school.Image)
	}
	if uploader.calls != 1 || repo.createCalls != 1 {
		t.Fatalf("expected one upload and one insert, got %d and %d", uploader.calls, repo.createCalls)
	}
	if repo.lastCreated.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestCreateValidationStopsBeforeUpload(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{name: "short contact", mutate: func(in *CreateInput) { in.Contact = "12345" }},
		{name: "non numeric contact", mutate: func(in *CreateInput) { in.Contact = "98765abcde" }},
		{name: "bad email", mutate: func(in *CreateInput) { in.EmailID = "not-an-email" }},
		{name: "blank city", mutate: func(in *CreateInput) { in.City = "   " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uploader := &fakeUploader{url: "http://x/img.jpg"}
			svc := NewService(repo, uploader)

			in := validInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in, "x.jpg", 16, bytes.NewReader([]byte("img")))
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if uploader.calls != 0 {
				t.Fatalf("expected no upload on invalid input, got %d calls", uploader.calls)
			}
			if repo.createCalls != 0 {
				t.Fatalf("expected no insert on invalid input, got %d calls", repo.createCalls)
			}
		})
	}
}

func TestCreateUploadFailureSkipsInsert(t *testing.T) {
	repo := &fakeRepo{}
	uploader := &fakeUploader{err: errors.New("media host down")}
	svc := NewService(repo, uploader)

	_, err := svc.Create(context.Background(), validInput(), "x.jpg", 16, bytes.NewReader([]byte("img")))
	if err == nil {
		t.Fatalf("expected error")
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected zero inserts after failed upload, got %d", repo.createCalls)
	}
}

func TestCreateInsertFailureSurfaces(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	uploader := &fakeUploader{url: "http://x/img.jpg"}
	svc := NewService(repo, uploader)

	_, err := svc.Create(context.Background(), validInput(), "x.jpg", 16, bytes.NewReader([]byte("img")))
	if err == nil {
		t.Fatalf("expected error")
	}
	if uploader.calls != 1 {
		t.Fatalf("expected the upload to have happened, got %d calls", uploader.calls)
	}
}

func TestListClampsPageAndLimit(t *testing.T) {
	repo := &fakeRepo{listTotal: 42}
	svc := NewService(repo, &fakeUploader{})

	result, err := svc.List(context.Background(), ListQuery{Page: -3, Limit: 100000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", result.Page)
	}
	if result.Limit != MaxPageSize {
		t.Fatalf("expected limit clamped to %d, got %d", MaxPageSize, result.Limit)
	}
	if repo.lastList.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", repo.lastList.Offset)
	}
}

func TestListComputesTotalPages(t *testing.T) {
	cases := []struct {
		total      int
		limit      int
		totalPages int
	}{
		{total: 0, limit: 10, totalPages: 0},
		{total: 1, limit: 10, totalPages: 1},
		{total: 10, limit: 10, totalPages: 1},
		{total: 11, limit: 10, totalPages: 2},
		{total: 42, limit: 5, totalPages: 9},
	}

	for _, tc := range cases {
		repo := &fakeRepo{listTotal: tc.total}
		svc := NewService(repo, &fakeUploader{})

		result, err := svc.List(context.Background(), ListQuery{Page: 1, Limit: tc.limit})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if result.TotalPages != tc.totalPages {
			t.Fatalf("total=%d limit=%d: expected totalPages %d, got %d",
				tc.total, tc.limit, tc.totalPages, result.TotalPages)
		}
	}
}

func TestListPassesTrimmedFilters(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeUploader{})

	if _, err := svc.List(context.Background(), ListQuery{Name: "  green ", State: " Maharashtra  ", Page: 2, Limit: 5}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastList.Name != "green" || repo.lastList.State != "Maharashtra" {
		t.Fatalf("expected trimmed filters, got %+v", repo.lastList)
	}
	if repo.lastList.Offset != 5 || repo.lastList.Limit != 5 {
		t.Fatalf("expected offset 5 limit 5, got %+v", repo.lastList)
	}
}
