package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      *string    `json:"name,omitempty" db:"name"`
	Client    string     `json:"client" db:"client"`
	SiteName  string     `json:"site_name" db:"site_name"`
	Status    string     `json:"status" db:"status"`
	StartDate *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// DisplayName falls back to the client when the project has no name.
func (p Project) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Client
}
