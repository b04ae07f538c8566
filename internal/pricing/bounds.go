// internal/pricing/bounds.go
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// Clip bounds: a predicted price always lands within ±50% of the base
// price, whatever the model says.
const (
	lowerBoundFactor = 0.5
	upperBoundFactor = 1.5
)

// Low-stock threshold for the insights alerts.
const lowStockThreshold = 10

// BoundAndClassify clips the raw predicted price into the allowed band
// around the base price, derives the discount (or markup) percentage
// and classifies demand. Boundary demand ratios (exactly 1 or 2) fall
// into the lower tier.
func BoundAndClassify(rawPrice, basePrice, demandRatio float64) (domain.PricingResult, error) {
	if basePrice <= 0 {
		return domain.PricingResult{}, fmt.Errorf("%w: base price %v must be positive",
			domain.ErrInvalidInput, basePrice)
	}

	price := rawPrice
	if lower := basePrice * lowerBoundFactor; price < lower {
		price = lower
	}
	if upper := basePrice * upperBoundFactor; price > upper {
		price = upper
	}

	discount := (price - basePrice) / basePrice * 100

	return domain.PricingResult{
		BasePrice:       basePrice,
		DynamicPrice:    round2(price),
		DiscountPercent: round2(discount),
		DemandLevel:     classifyDemand(demandRatio),
		DemandRatio:     round2(demandRatio),
	}, nil
}

func classifyDemand(demandRatio float64) domain.DemandLevel {
	switch {
	case demandRatio > 2:
		return domain.DemandHigh
	case demandRatio > 1:
		return domain.DemandMedium
	default:
		return domain.DemandLow
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
