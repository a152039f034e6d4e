package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer for data transfer between layers.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CodeNo    *string   `json:"code_no,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
