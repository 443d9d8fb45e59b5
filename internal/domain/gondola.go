package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const statusDeployed = "deployed"

type Gondola struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SerialNumber string    `json:"serial_number" db:"serial_number"`
	Model        *string   `json:"model,omitempty" db:"model"`
	Location     *string   `json:"location,omitempty" db:"location"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (g Gondola) IsDeployed() bool {
	return strings.EqualFold(strings.TrimSpace(g.Status), statusDeployed)
}
