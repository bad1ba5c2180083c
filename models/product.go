package models

import "fmt"

// Product is the local cache entry for a catalog product whose authoritative
// copy lives in the remote store. LocalID is always present; RemoteID stays
// empty until the product has been seen in at least one pull.
type Product struct {
	LocalID    string  `json:"local_id" db:"local_id"`
	RemoteID   string  `json:"remote_id,omitempty" db:"remote_id"`
	TenantID   string  `json:"tenant_id" db:"tenant_id"`
	SKU        string  `json:"sku" db:"sku"`
	Name       string  `json:"name" db:"name"`
	UnitPrice  float64 `json:"unit_price" db:"unit_price"`
	Unit       string  `json:"unit" db:"unit"`
	DefaultQty float64 `json:"default_qty" db:"default_qty"`
	Stock      float64 `json:"stock" db:"stock"`

	// UpdatedAt is the last-modified timestamp in milliseconds since epoch.
	// For synced entries it equals the last known remote timestamp.
	UpdatedAt int64 `json:"updated_at" db:"updated_at"`

	// Synced is false while the entry carries local edits that the remote
	// store has not confirmed.
	Synced bool `json:"synced" db:"synced"`
}

// Validate checks the invariants every cached product must satisfy.
// Records pulled from the remote store that fail validation are skipped,
// not fatal to the pull.
func (p Product) Validate() error {
	if p.TenantID == "" {
		return fmt.Errorf("%w: empty tenant id", ErrValidation)
	}
	if p.SKU == "" {
		return fmt.Errorf("%w: empty sku", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: negative stock %v for sku %s", ErrValidation, p.Stock, p.SKU)
	}
	if p.UnitPrice < 0 {
		return fmt.Errorf("%w: negative unit price for sku %s", ErrValidation, p.SKU)
	}
	return nil
}
