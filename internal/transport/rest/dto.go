package rest

import (
	"encoding/json"

	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// createProductRequest is the body of POST /api/v1/products. Price accepts a JSON number or string.
type createProductRequest struct {
	Name     string           `json:"name" validate:"required,notblank,max=255"`
	Quantity *int32           `json:"quantity"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

type productResponse struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Quantity int32       `json:"quantity"`
	Price    json.Number `json:"price"`
}

type pageResponse struct {
	Items      []productResponse `json:"items"`
	Page       int32             `json:"page"`
	Size       int32             `json:"size"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int32             `json:"totalPages"`
}

type productRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type summaryResponse struct {
	TotalProducts int                  `json:"totalProducts"`
	TotalQuantity int64                `json:"totalQuantity"`
	AveragePrice  json.Number          `json:"averagePrice"`
	OutOfStock    []productRefResponse `json:"outOfStock"`
}

func toProductResponse(p *store.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    json.Number(p.Price.String()),
	}
}

func toProductResponses(products []store.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toPageResponse(p *store.Page) pageResponse {
	return pageResponse{
		Items:      toProductResponses(p.Items),
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func toSummaryResponse(s *service.ProductSummary) summaryResponse {
	refs := make([]productRefResponse, 0, len(s.OutOfStock))
	for _, ref := range s.OutOfStock {
		refs = append(refs, productRefResponse{ID: ref.ID, Name: ref.Name})
	}
	return summaryResponse{
		TotalProducts: s.TotalProducts,
		TotalQuantity: s.TotalQuantity,
		AveragePrice:  json.Number(s.AveragePrice.StringFixed(service.AveragePriceScale)),
		OutOfStock:    refs,
	}
}
