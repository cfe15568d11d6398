package menu

import (
	"time"

	"github.com/gofrs/uuid"
)

type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ItemInput carries the editable fields of a menu item; create and update take the full set.
type ItemInput struct {
	Title       string
	Description *string
	Price       float64
	ImageURL    *string
	Available   bool
}
