package models

import (
	"fmt"
	"math"
)

// TotalTolerance is the maximum allowed difference between a sale's Total and
// the sum of its item subtotals. Monetary values are rounded to 2 decimals.
const TotalTolerance = 0.01

// SaleItem is one ordered line of a pending sale.
type SaleItem struct {
	ProductID string  `json:"product_id"`
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// PendingSale is a sale captured on the device and not yet confirmed durable
// on the remote side. ID is generated on the client and doubles as the
// idempotency key for the remote create.
type PendingSale struct {
	ID       string     `json:"id"`
	TenantID string     `json:"tenant_id"`
	UserID   string     `json:"user_id"`
	Items    []SaleItem `json:"items"`
	Total    float64    `json:"total"`

	// CreatedAt is the sale confirmation time in milliseconds since epoch.
	// Pending sales are pushed oldest-first to preserve the intended stock
	// deduction order.
	CreatedAt int64 `json:"created_at"`

	// Synced flips to true once the remote store has confirmed the sale.
	// A synced record is immutable and eligible for pruning.
	Synced bool `json:"synced"`

	// Attempts counts failed push attempts; LastError keeps the most recent
	// failure message for diagnostics.
	Attempts  int    `json:"attempts"`
	LastError string `json:"last_error,omitempty"`
}

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemsTotal returns the sum of the item subtotals rounded to 2 decimals.
func (s PendingSale) ItemsTotal() float64 {
	var sum float64
	for _, it := range s.Items {
		sum += it.Subtotal
	}
	return Round2(sum)
}

// Validate checks the invariants a sale must satisfy before it may be queued:
// at least one item, positive quantities, non-negative prices, and a total
// that matches the item subtotals within [TotalTolerance].
func (s PendingSale) Validate() error {
	if s.TenantID == "" {
		return fmt.Errorf("%w: empty tenant id", ErrValidation)
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("%w: sale has no items", ErrValidation)
	}
	for i, it := range s.Items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: item %d has no product reference", ErrValidation, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", ErrValidation, i)
		}
		if it.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has negative unit price", ErrValidation, i)
		}
	}
	if math.Abs(s.Total-s.ItemsTotal()) > TotalTolerance {
		return fmt.Errorf("%w: total %.2f does not match items total %.2f",
			ErrValidation, s.Total, s.ItemsTotal())
	}
	return nil
}
