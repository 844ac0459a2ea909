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

type UpdateProductCommand struct {
	Product product.UpdateProductModel
	Version product.APIVersion
}

func (c UpdateProductCommand) Validate() error {
	return c.Product.Validate()
}

func HandleUpdateProduct(version product.APIVersion) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		productID, err := strconv.Atoi(idParam)
		if err != nil {
			core.WriteBadRequest(w, r, fmt.Errorf("invalid value for route param 'id': '%s'", idParam))
			return
		}

		model, err := core.RequestBody[product.UpdateProductModel](r)
		if err != nil {
			core.WriteBadRequest(w, r, err)
			return
		}

		// The body id only ever serves to match the route; a mismatch is
		// rejected before validation or lookup.
		if productID != model.ID {
			core.WriteBadRequest(w, r, core.ErrorBody{Error: "route id does not match body id"})
			return
		}

		command := UpdateProductCommand{Product: model, Version: version}
		response, err := mediator.Send[UpdateProductCommand, any](r.Context(), command)
		if err != nil {
			core.WriteCommandError(w, r, err)
			return
		}

		core.WriteOK(w, r, response)
	}
}

type UpdateProductCommandHandler struct {
	store product.ProductStore
}

func NewUpdateProductCommandHandler(store product.ProductStore) *UpdateProductCommandHandler {
	return &UpdateProductCommandHandler{store}
}

func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	request UpdateProductCommand,
) (any, error) {
	existing, err := h.store.GetByID(ctx, request.Product.ID)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, core.NewCommandError(http.StatusNotFound, nil, core.WithReason("product not found"))
	}
	if err != nil {
		return nil, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to load product"))
	}

	updated := product.ApplyUpdate(request.Product, existing)
	if err := h.store.Update(ctx, updated); err != nil {
		return nil, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to store product"))
	}

	return product.ToReadModel(updated, request.Version), nil
}
