package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("validation error")

const (
	minETAMinutes     = 10
	etaMinutesPerLine = 5
)

// BuildOrder validates the input and derives total, ETA and QR payload.
// The returned order is not persisted.
func BuildOrder(id uuid.UUID, input CreateOrderInput, now time.Time) (*Order, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: payment_method is required", ErrValidation)
	}

	items := make([]OrderItem, len(input.Items))
	for i, item := range input.Items {
		if item.Qty < 1 {
			return nil, fmt.Errorf("%w: item %d (%s): qty must be at least 1, got %d", ErrValidation, i, item.ItemID, item.Qty)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: item %d (%s): price cannot be negative, got %v", ErrValidation, i, item.ItemID, item.Price)
		}
		items[i] = item
	}

	total := Total(items)

	return &Order{
		ID:            id,
		UserID:        input.UserID,
		Items:         items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        StatusPending,
		ETAMinutes:    ETAMinutes(len(items)),
		QRCode:        QRPayload(input.UserID, now, total),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Total sums qty*price over all lines without rounding individual lines.
func Total(items []OrderItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Qty)))
		sum = sum.Add(line)
	}
	return sum.InexactFloat64()
}

// ETAMinutes scales with the number of distinct lines, not with quantity.
func ETAMinutes(lines int) int {
	return max(minETAMinutes, etaMinutesPerLine*lines)
}

// QRPayload renders ORDER|<user_id>|<timestamp>|<total>.
func QRPayload(userID string, createdAt time.Time, total float64) string {
	return fmt.Sprintf("ORDER|%s|%s|%s", userID, createdAt.UTC().Format(time.RFC3339Nano), formatTotal(total))
}

func formatTotal(total float64) string {
	s := strconv.FormatFloat(total, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
