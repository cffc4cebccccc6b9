package schools

import "context"

// ListFilter describes optional filters and the page window for listing.
// Name matches by case-insensitive substring, State by case-insensitive
// exact value; both compose with AND.
type ListFilter struct {
	Name   string
	State  string
	Limit  int
	Offset int
}

// SchoolsRepo defines persistence operations for schools.
type SchoolsRepo interface {
	Create(ctx context.Context, school School) (School, error)
	List(ctx context.Context, filter ListFilter) ([]School, int, error)
	GetByID(ctx context.Context, id int64) (School, error)
}
