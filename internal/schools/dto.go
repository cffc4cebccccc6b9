package schools

import "time"

// SchoolResponse is the outward-facing representation of a school.
type SchoolResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Contact   string    `json:"contact"`
	EmailID   string    `json:"email_id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is the body of a successful list request.
type ListResponse struct {
	Success    bool             `json:"success"`
	Data       []SchoolResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// GetResponse is the body of a successful single-record request.
type GetResponse struct {
	Success bool           `json:"success"`
	Data    SchoolResponse `json:"data"`
}

func toResponse(s School) SchoolResponse {
	return SchoolResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Contact:   s.Contact,
		EmailID:   s.EmailID,
		Image:     s.Image,
		CreatedAt: s.CreatedAt,
	}
}

func toResponseList(items []School) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toResponse(s))
	}
	return out
}
