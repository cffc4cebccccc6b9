package schools

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory SchoolsRepo used when no database is configured.
type MemoryRepo struct {
	mu     sync.RWMutex
	items  []School
	nextID int64
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// Create stores the school and assigns the next id.
func (r *MemoryRepo) Create(ctx context.Context, school School) (School, error) {
	if err := ctx.Err(); err != nil {
		return School{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	school.ID = r.nextID
	r.nextID++
	if school.CreatedAt.IsZero() {
		school.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, school)
	return school, nil
}

// List filters with the same semantics as the Postgres predicate: state is a
// case-insensitive exact match, name a case-insensitive substring match.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]School, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	name := strings.ToLower(strings.TrimSpace(filter.Name))
	state := strings.TrimSpace(filter.State)

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []School{}
	for _, s := range r.items {
		if state != "" && !strings.EqualFold(s.State, state) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(s.Name), name) {
			continue
		}
		matched = append(matched, s)
	}

	total := len(matched)
	if offset >= total {
		return []School{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]School, end-offset)
	copy(page, matched[offset:end])
	return page, total, nil
}

// GetByID fetches one school.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (School, error) {
	if err := ctx.Err(); err != nil {
		return School{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return School{}, ErrNotFound
}

var _ SchoolsRepo = (*MemoryRepo)(nil)
