package queries

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

type GetProductQuery struct {
	ProductID int
	Version   product.APIVersion
}

func HandleGetProduct(version product.APIVersion) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := chi.URLParam(r, "id")
		productID, err := strconv.Atoi(idParam)
		if err != nil {
			core.WriteBadRequest(w, r, fmt.Errorf("invalid value for route param 'id': '%s'", idParam))
			return
		}

		query := GetProductQuery{ProductID: productID, Version: version}
		response, err := mediator.Send[GetProductQuery, any](r.Context(), query)
		if err != nil {
			core.WriteCommandError(w, r, err)
			return
		}

		core.WriteOK(w, r, response)
	}
}

type GetProductQueryHandler struct {
	store product.ProductStore
}

func NewGetProductQueryHandler(store product.ProductStore) *GetProductQueryHandler {
	return &GetProductQueryHandler{store}
}

func (h *GetProductQueryHandler) Handle(ctx context.Context, request GetProductQuery) (any, error) {
	p, err := h.store.GetByID(ctx, request.ProductID)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, core.NewCommandError(http.StatusNotFound, nil, core.WithReason("product not found"))
	}
	if err != nil {
		return nil, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to load product"))
	}

	return product.ToReadModel(p, request.Version), nil
}
