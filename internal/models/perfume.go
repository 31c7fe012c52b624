package models

import "github.com/lib/pq"

// Perfume is a single catalogue entry. Records are immutable after
// load; the catalogue store is their only owner.
type Perfume struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Price       int            `json:"price"`
	Image       string         `json:"image"`
	Notes       pq.StringArray `gorm:"type:text[]" json:"notes"`
	Description string         `json:"description"`
	Mood        string         `json:"mood"`
}

// CartLine pairs a perfume with a quantity. At most one line exists
// per perfume ID within a cart; quantity is always >= 1.
type CartLine struct {
	PerfumeID string `json:"perfume_id"`
	Quantity  int    `json:"quantity"`
}
