package schools

import "time"

// School represents one registered institution.
type School struct {
	ID        int64
	Name      string
	Address   string
	City      string
	State     string
	Contact   string
	EmailID   string
	Image     string
	CreatedAt time.Time
}
