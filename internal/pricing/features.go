// internal/pricing/features.go
package pricing

import (
	"fmt"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// Derive computes the feature vector for one product against the
// dataset-wide maximum stock. Every denominator carries a +1 offset so
// zero stock or zero sales never divides by zero; the one exception is
// the inventory normalization, which is undefined when the whole
// dataset holds zero stock, so that case is rejected instead of letting
// a NaN flow into the predictor.
func Derive(p domain.Product, maxStock int) (domain.FeatureVector, error) {
	if maxStock <= 0 {
		return domain.FeatureVector{}, fmt.Errorf("%w: dataset max stock is %d, inventory level undefined",
			domain.ErrInvalidInput, maxStock)
	}

	stock := float64(p.Stock)
	sales7 := float64(p.Sales7)
	sales30 := float64(p.Sales30)

	return domain.FeatureVector{
		DemandRatio:    sales7 / (stock + 1),
		InventoryLevel: stock / float64(maxStock),
		SalesTrend:     sales30 / (sales7 + 1),
		Popularity:     sales30 / (p.BasePrice*stock + 1),
		Scarcity:       1 / (stock + 1),
		Day:            float64(p.Day),
	}, nil
}

// DemandRatio computes just the demand ratio for a product. The
// insights rollup ranks on this without needing the full vector.
func DemandRatio(p domain.Product) float64 {
	return float64(p.Sales7) / (float64(p.Stock) + 1)
}
