package product

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned by GetByID when no product exists with
// the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductStore is the persistence boundary for the catalog. Count and
// GetFiltered evaluate the same filter but run as separate calls with no
// shared snapshot - under concurrent writes the reported total may drift
// from the fetched page.
type ProductStore interface {
	GetByID(ctx context.Context, id int) (Product, error)
	GetAll(ctx context.Context) ([]Product, error)

	// GetFiltered returns the page slice of the filtered set, ordered by
	// ascending id. Callers clamp the page before calling.
	GetFiltered(ctx context.Context, filter ProductFilter, page Page) ([]Product, error)
	Count(ctx context.Context, filter ProductFilter) (int, error)

	// Add assigns the id and creation timestamp and returns the stored
	// entity.
	Add(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) error

	// Delete is a no-op when the id is absent.
	Delete(ctx context.Context, id int) error
}
