package service

import (
	"errors"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AveragePriceScale is the number of decimal places the average price is rounded to.
const AveragePriceScale = 2

// ProductSummary is a freshly computed view over all products.
type ProductSummary struct {
	TotalProducts int
	TotalQuantity int64
	AveragePrice  decimal.Decimal
	OutOfStock    []ProductRef
}

// ProductRef identifies a product by ID and name only.
type ProductRef struct {
	ID   uuid.UUID
	Name string
}

// Summarize aggregates products in a single pass.
// The average price is rounded half-up to AveragePriceScale places and is zero for no products.
func Summarize(products []store.Product) *ProductSummary {
	summary := &ProductSummary{
		AveragePrice: decimal.Zero,
		OutOfStock:   []ProductRef{},
	}

	totalPrice := decimal.Zero
	for _, p := range products {
		summary.TotalQuantity += int64(p.Quantity)
		totalPrice = totalPrice.Add(p.Price)
		if p.Quantity == 0 {
			summary.OutOfStock = append(summary.OutOfStock, ProductRef{ID: p.ID, Name: p.Name})
		}
	}
	summary.TotalProducts = len(products)

	if summary.TotalProducts > 0 {
		// prices are non-negative, so rounding half away from zero is half-up
		summary.AveragePrice = totalPrice.DivRound(decimal.NewFromInt(int64(summary.TotalProducts)), AveragePriceScale)
	}
	return summary
}

func isNotFound(err error) bool {
	return errors.Is(err, perrors.ErrProductNotFound)
}
