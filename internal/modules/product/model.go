package product

import (
	"strings"
	"time"
)

// Product is the persisted catalog entity. ID and CreatedAt are assigned
// by the store and never change afterwards.
type Product struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	CreatedAt time.Time `db:"created_at"`
}

type CreateProductModel struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateProductModel struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductFilter narrows a listing. Absent fields impose no constraint,
// present ones compose conjunctively and commute.
type ProductFilter struct {
	Name     *string
	MinPrice *float64
	MaxPrice *float64
}

// Matches reports whether the product satisfies every present predicate.
// Name matching is case-sensitive substring containment; price bounds
// are inclusive.
func (f ProductFilter) Matches(p Product) bool {
	if f.Name != nil && !strings.Contains(p.Name, *f.Name) {
		return false
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}

	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	return true
}

const (
	minPageSize = 1
	maxPageSize = 100
)

type Page struct {
	Number int
	Size   int
}

// Clamped silently corrects out-of-range paging values to the nearest
// valid boundary. Out-of-range input is never an error.
func (p Page) Clamped() Page {
	if p.Number < 1 {
		p.Number = 1
	}

	if p.Size < minPageSize {
		p.Size = minPageSize
	}

	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}

	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
