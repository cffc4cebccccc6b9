package schools

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements SchoolsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new school and returns it with the assigned id.
func (r *PGRepo) Create(ctx context.Context, school School) (School, error) {
	const query = `
INSERT INTO schools (name, address, city, state, contact, email_id, image, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		school.Name,
		school.Address,
		school.City,
		school.State,
		school.Contact,
		school.EmailID,
		school.Image,
		school.CreatedAt,
	).Scan(&school.ID)
	if err != nil {
		return School{}, err
	}
	return school, nil
}

// List returns one page of matching schools plus the total match count.
// Filter values are always parameter-bound; limit and offset are bound after
// clamping, never spliced into the query text.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]School, int, error) {
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

	where, args := buildFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM schools" + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataQuery := fmt.Sprintf(
		"SELECT id, name, address, city, state, contact, email_id, image, created_at FROM schools%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	rows, err := r.DB.QueryContext(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []School{}
	for rows.Next() {
		var s School
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Address,
			&s.City,
			&s.State,
			&s.Contact,
			&s.EmailID,
			&s.Image,
			&s.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// GetByID fetches one school.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (School, error) {
	const query = `
SELECT id, name, address, city, state, contact, email_id, image, created_at
FROM schools
WHERE id = $1`

	var s School
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.City,
		&s.State,
		&s.Contact,
		&s.EmailID,
		&s.Image,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	return s, nil
}

func buildFilter(filter ListFilter) (string, []any) {
	var conds []string
	var args []any
	if state := strings.TrimSpace(filter.State); state != "" {
		args = append(args, state)
		conds = append(conds, fmt.Sprintf("LOWER(state) = LOWER($%d)", len(args)))
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, name)
		conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var _ SchoolsRepo = (*PGRepo)(nil)
