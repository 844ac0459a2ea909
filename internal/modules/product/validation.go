package product

import (
	"strings"
	"unicode/utf8"

	"github.com/eskrenkovic/product-catalog-go/internal/modules/core"
)

const maxNameLength = 200

var createProductRules = core.Rules(
	core.Rule[CreateProductModel]{
		Property: "Name",
		Message:  "name must not be empty",
		IsValid: func(m CreateProductModel) bool {
			return strings.TrimSpace(m.Name) != ""
		},
	},
	core.Rule[CreateProductModel]{
		Property: "Name",
		Message:  "name must be 200 characters or fewer",
		IsValid: func(m CreateProductModel) bool {
			return utf8.RuneCountInString(m.Name) <= maxNameLength
		},
	},
	core.Rule[CreateProductModel]{
		Property: "Price",
		Message:  "price must not be negative",
		IsValid: func(m CreateProductModel) bool {
			return m.Price >= 0
		},
	},
)

var updateProductRules = core.Rules(
	core.Rule[UpdateProductModel]{
		Property: "Id",
		Message:  "id must be greater than zero",
		IsValid: func(m UpdateProductModel) bool {
			return m.ID > 0
		},
	},
	core.Rule[UpdateProductModel]{
		Property: "Name",
		Message:  "name must not be empty",
		IsValid: func(m UpdateProductModel) bool {
			return strings.TrimSpace(m.Name) != ""
		},
	},
	core.Rule[UpdateProductModel]{
		Property: "Name",
		Message:  "name must be 200 characters or fewer",
		IsValid: func(m UpdateProductModel) bool {
			return utf8.RuneCountInString(m.Name) <= maxNameLength
		},
	},
	core.Rule[UpdateProductModel]{
		Property: "Price",
		Message:  "price must not be negative",
		IsValid: func(m UpdateProductModel) bool {
			return m.Price >= 0
		},
	},
)

func (m CreateProductModel) Validate() error {
	return createProductRules.Validate(m)
}

func (m UpdateProductModel) Validate() error {
	return updateProductRules.Validate(m)
}
