package order

import (
	"time"

	"github.com/gofrs/uuid"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

// OrderItem is a snapshot of a menu item at order time. ItemID is not checked against the menu.
type OrderItem struct {
	ItemID string  `json:"item_id"`
	Title  string  `json:"title"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
}

type Order struct {
	ID            uuid.UUID   `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	Status        Status      `json:"status"`
	ETAMinutes    int         `json:"eta_minutes"`
	QRCode        string      `json:"qr_code"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type CreateOrderInput struct {
	UserID        string
	Items         []OrderItem
	PaymentMethod string
}

// Acknowledgement is returned by the simulated Li-Fi receiver.
type Acknowledgement struct {
	Status   string `json:"status"`
	Received bool   `json:"received"`
	OrderID  string `json:"order_id"`
	Effect   string `json:"effect"`
}
