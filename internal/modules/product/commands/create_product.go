package commands

import (
	"context"
	"net/http"
	"path"
	"strconv"

	"github.com/eskrenkovic/product-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
)

type CreateProductCommand struct {
	Product product.CreateProductModel
	Version product.APIVersion
}

func (c CreateProductCommand) Validate() error {
	return c.Product.Validate()
}

type CreateProductResponse struct {
	ProductID int
	Body      any
}

func HandleCreateProduct(version product.APIVersion) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model, err := core.RequestBody[product.CreateProductModel](r)
		if err != nil {
			core.WriteBadRequest(w, r, err)
			return
		}

		command := CreateProductCommand{Product: model, Version: version}
		response, err := mediator.Send[CreateProductCommand, CreateProductResponse](r.Context(), command)
		if err != nil {
			core.WriteCommandError(w, r, err)
			return
		}

		location := path.Join(r.URL.Path, strconv.Itoa(response.ProductID))
		core.WriteCreated(w, r, location, response.Body)
	}
}

type CreateProductCommandHandler struct {
	store product.ProductStore
}

func NewCreateProductCommandHandler(store product.ProductStore) *CreateProductCommandHandler {
	return &CreateProductCommandHandler{store}
}

func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	request CreateProductCommand,
) (CreateProductResponse, error) {
	created, err := h.store.Add(ctx, product.NewProduct(request.Product))
	if err != nil {
		return CreateProductResponse{}, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to store product"))
	}

	return CreateProductResponse{
		ProductID: created.ID,
		Body:      product.ToReadModel(created, request.Version),
	}, nil
}
