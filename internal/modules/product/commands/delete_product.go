package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/product-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
)

// DeleteProductCommand has no validation rules - requests without a
// Validate implementation pass the validation behavior automatically.
type DeleteProductCommand struct {
	ProductID int
}

func HandleDeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		productID, err := strconv.Atoi(idParam)
		if err != nil {
			core.WriteBadRequest(w, r, fmt.Errorf("invalid value for route param 'id': '%s'", idParam))
			return
		}

		command := DeleteProductCommand{ProductID: productID}
		if _, err := mediator.Send[DeleteProductCommand, core.Unit](r.Context(), command); err != nil {
			core.WriteCommandError(w, r, err)
			return
		}

		core.WriteNoContent(w, r)
	}
}

type DeleteProductCommandHandler struct {
	store product.ProductStore
}

func NewDeleteProductCommandHandler(store product.ProductStore) *DeleteProductCommandHandler {
	return &DeleteProductCommandHandler{store}
}

// Handle reports NotFound for absent ids even though the store delete
// itself is a no-op on absence, so repeated deletes stay fault-free.
func (h *DeleteProductCommandHandler) Handle(
	ctx context.Context,
	request DeleteProductCommand,
) (core.Unit, error) {
	if _, err := h.store.GetByID(ctx, request.ProductID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return core.Unit{}, core.NewCommandError(
				http.StatusNotFound, nil, core.WithReason("product not found"))
		}
		return core.Unit{}, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to load product"))
	}

	if err := h.store.Delete(ctx, request.ProductID); err != nil {
		return core.Unit{}, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to delete product"))
	}

	return core.Unit{}, nil
}
