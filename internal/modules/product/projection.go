package product

import "time"

// APIVersion selects the wire shape a product is projected into. The
// enumeration is closed - a new version adds a case to ToReadModel
// without touching the existing ones.
type APIVersion int

const (
	V1 APIVersion = iota + 1
	V2
)

type ProductReadModel struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductReadModelV2 extends the v1 shape with a derived constant-valued
// currency field. Storage stays single-shaped.
type ProductReadModelV2 struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

const currencyUSD = "USD"

// ToReadModel maps a persisted product to the read shape of the requested
// version. Total - every entity maps to exactly one projection per version.
func ToReadModel(p Product, version APIVersion) any {
	switch version {
	case V2:
		return ProductReadModelV2{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Currency:  currencyUSD,
			CreatedAt: p.CreatedAt,
		}
	default:
		return ProductReadModel{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			CreatedAt: p.CreatedAt,
		}
	}
}

// NewProduct maps a create payload to an entity. ID and CreatedAt are
// left zero for the store to assign.
func NewProduct(m CreateProductModel) Product {
	return Product{
		Name:  m.Name,
		Price: m.Price,
	}
}

// ApplyUpdate returns the existing entity with its mutable fields
// replaced. ID and CreatedAt are preserved regardless of the payload.
func ApplyUpdate(m UpdateProductModel, existing Product) Product {
	existing.Name = m.Name
	existing.Price = m.Price
	return existing
}
