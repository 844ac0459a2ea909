package queries

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/product-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/product-catalog-go/internal/modules/product"

	"github.com/eskrenkovic/mediator-go"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

type ListProductsQuery struct {
	Filter  product.ProductFilter
	Page    product.Page
	Version product.APIVersion
}

// ListProductsResponse is the paged list envelope. Page and PageSize echo
// the clamped values actually used for the slice.
type ListProductsResponse struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int   `json:"total"`
	Data     []any `json:"data"`
}

func HandleListProducts(version product.APIVersion) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseListProductsQuery(r, version)
		if err != nil {
			core.WriteBadRequest(w, r, err)
			return
		}

		response, err := mediator.Send[ListProductsQuery, ListProductsResponse](r.Context(), query)
		if err != nil {
			core.WriteCommandError(w, r, err)
			return
		}

		core.WriteOK(w, r, response)
	}
}

func parseListProductsQuery(r *http.Request, version product.APIVersion) (ListProductsQuery, error) {
	params := r.URL.Query()

	query := ListProductsQuery{
		Page:    product.Page{Number: defaultPageNumber, Size: defaultPageSize},
		Version: version,
	}

	if name := params.Get("name"); name != "" {
		query.Filter.Name = &name
	}

	if raw := params.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ListProductsQuery{}, fmt.Errorf("invalid value for query param 'minPrice': '%s'", raw)
		}
		query.Filter.MinPrice = &minPrice
	}

	if raw := params.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ListProductsQuery{}, fmt.Errorf("invalid value for query param 'maxPrice': '%s'", raw)
		}
		query.Filter.MaxPrice = &maxPrice
	}

	if raw := params.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return ListProductsQuery{}, fmt.Errorf("invalid value for query param 'page': '%s'", raw)
		}
		query.Page.Number = page
	}

	if raw := params.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return ListProductsQuery{}, fmt.Errorf("invalid value for query param 'pageSize': '%s'", raw)
		}
		query.Page.Size = pageSize
	}

	return query, nil
}

type ListProductsQueryHandler struct {
	store product.ProductStore
}

func NewListProductsQueryHandler(store product.ProductStore) *ListProductsQueryHandler {
	return &ListProductsQueryHandler{store}
}

func (h *ListProductsQueryHandler) Handle(
	ctx context.Context,
	request ListProductsQuery,
) (ListProductsResponse, error) {
	page := request.Page.Clamped()

	// Count and fetch are two separate store calls with no shared
	// snapshot; a write landing between them can make the total drift
	// from the page contents.
	total, err := h.store.Count(ctx, request.Filter)
	if err != nil {
		return ListProductsResponse{}, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to count products"))
	}

	items, err := h.store.GetFiltered(ctx, request.Filter, page)
	if err != nil {
		return ListProductsResponse{}, core.NewCommandError(
			http.StatusInternalServerError, err, core.WithReason("failed to list products"))
	}

	data := core.Map(items, func(p product.Product) any {
		return product.ToReadModel(p, request.Version)
	})

	return ListProductsResponse{
		Page:     page.Number,
		PageSize: page.Size,
		Total:    total,
		Data:     data,
	}, nil
}
