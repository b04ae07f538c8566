// internal/pricing/engine.go
package pricing

import (
	"fmt"

	"github.com/freshmart/dynamic-pricing/internal/dataset"
	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// Engine combines the immutable product table with the startup-selected
// predictor. It holds no mutable state; every call recomputes from the
// table.
type Engine struct {
	table     *dataset.Table
	predictor Predictor
}

func NewEngine(table *dataset.Table, predictor Predictor) *Engine {
	return &Engine{table: table, predictor: predictor}
}

// Mode reports the active predictor variant.
func (e *Engine) Mode() string {
	return e.predictor.Mode()
}

// Table exposes the underlying dataset for read-only lookups.
func (e *Engine) Table() *dataset.Table {
	return e.table
}

// priceOf derives features for one product, runs the predictor and
// bounds the result.
func (e *Engine) priceOf(p domain.Product) (domain.PricingResult, error) {
	features, err := Derive(p, e.table.MaxStock())
	if err != nil {
		return domain.PricingResult{}, err
	}

	raw, err := e.predictor.Predict(features, p.BasePrice)
	if err != nil {
		return domain.PricingResult{}, err
	}

	result, err := BoundAndClassify(raw, p.BasePrice, features.DemandRatio)
	if err != nil {
		return domain.PricingResult{}, err
	}
	result.Stock = p.Stock
	return result, nil
}

// PriceProduct prices a single product by id.
func (e *Engine) PriceProduct(id int) (domain.ProductDetail, error) {
	p, err := e.table.FindByID(id)
	if err != nil {
		return domain.ProductDetail{}, err
	}

	result, err := e.priceOf(p)
	if err != nil {
		return domain.ProductDetail{}, err
	}

	return domain.ProductDetail{
		ProductID:       p.ProductID,
		Name:            p.Name,
		Category:        p.Category,
		BasePrice:       result.BasePrice,
		DynamicPrice:    result.DynamicPrice,
		DiscountPercent: result.DiscountPercent,
		DemandLevel:     result.DemandLevel,
		DemandRatio:     result.DemandRatio,
		Stock:           result.Stock,
		Sales7Days:      p.Sales7,
		Sales30Days:     p.Sales30,
	}, nil
}

// PriceAll prices every product in dataset order.
func (e *Engine) PriceAll() ([]domain.PricedProduct, error) {
	return e.priceList(e.table.All())
}

// PriceByCategory prices the products of one category
// (case-insensitive). Zero matches surface as not-found.
func (e *Engine) PriceByCategory(category string) ([]domain.PricedProduct, error) {
	products := e.table.FindByCategory(category)
	if len(products) == 0 {
		return nil, fmt.Errorf("category %s: %w", category, domain.ErrNotFound)
	}
	return e.priceList(products)
}

func (e *Engine) priceList(products []domain.Product) ([]domain.PricedProduct, error) {
	out := make([]domain.PricedProduct, 0, len(products))
	for _, p := range products {
		result, err := e.priceOf(p)
		if err != nil {
			return nil, fmt.Errorf("price product %d: %w", p.ProductID, err)
		}
		out = append(out, domain.PricedProduct{
			ProductID:       p.ProductID,
			Name:            p.Name,
			Category:        p.Category,
			BasePrice:       result.BasePrice,
			Stock:           result.Stock,
			DynamicPrice:    result.DynamicPrice,
			DiscountPercent: result.DiscountPercent,
			DemandLevel:     result.DemandLevel,
			DemandRatio:     result.DemandRatio,
		})
	}
	return out, nil
}

// PredictRaw feeds a caller-supplied feature vector straight to the
// trained model, bypassing feature derivation and price bounding. Only
// available in model mode; the formula needs a base price the caller
// does not supply here.
func (e *Engine) PredictRaw(f domain.FeatureVector) (float64, error) {
	if e.predictor.Mode() != "model" {
		return 0, domain.ErrModelUnavailable
	}
	raw, err := e.predictor.Predict(f, 0)
	if err != nil {
		return 0, err
	}
	return round2(raw), nil
}
