// internal/domain/models.go
package domain

// Product is a single row of the grocery product table, loaded once at
// startup and immutable afterwards.
type Product struct {
	ProductID int     `json:"product_id" db:"product_id" csv:"product_id"`
	Name      string  `json:"name" db:"name"`
	Category  string  `json:"category" db:"category"`
	BasePrice float64 `json:"base_price" db:"base_price"`
	Stock     int     `json:"stock" db:"stock"`
	Sales7    int     `json:"sales_7" db:"sales_7"`
	Sales30   int     `json:"sales_30" db:"sales_30"`
	Day       int     `json:"day" db:"day"`
}

// FeatureVector holds the derived pricing features for one product.
// It is ephemeral: computed per request and discarded after the
// response is built.
type FeatureVector struct {
	DemandRatio    float64 `json:"demand_ratio"`
	InventoryLevel float64 `json:"inventory_level"`
	SalesTrend     float64 `json:"sales_trend"`
	Popularity     float64 `json:"popularity"`
	Scarcity       float64 `json:"scarcity"`
	Day            float64 `json:"day"`
}

// Values returns the features in the fixed order the predictor expects:
// demand_ratio, inventory_level, sales_trend, popularity, scarcity, day.
func (f FeatureVector) Values() [6]float64 {
	return [6]float64{f.DemandRatio, f.InventoryLevel, f.SalesTrend, f.Popularity, f.Scarcity, f.Day}
}

// DemandLevel classifies short-term demand pressure on a product.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// PricingResult is the outcome of pricing a single product.
type PricingResult struct {
	BasePrice       float64     `json:"base_price"`
	DynamicPrice    float64     `json:"dynamic_price"`
	DiscountPercent float64     `json:"discount_percent"`
	DemandLevel     DemandLevel `json:"demand_level"`
	DemandRatio     float64     `json:"demand_ratio"`
	Stock           int         `json:"stock"`
}

// PricedProduct is the list-endpoint response shape for one product.
type PricedProduct struct {
	ProductID       int         `json:"product_id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	BasePrice       float64     `json:"base_price"`
	Stock           int         `json:"stock"`
	DynamicPrice    float64     `json:"dynamic_price"`
	DiscountPercent float64     `json:"discount_percent"`
	DemandLevel     DemandLevel `json:"demand_level"`
	DemandRatio     float64     `json:"demand_ratio"`
}

// ProductDetail is the single-product response shape. It extends the
// list shape with the raw sales counters.
type ProductDetail struct {
	ProductID       int         `json:"product_id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	BasePrice       float64     `json:"base_price"`
	DynamicPrice    float64     `json:"dynamic_price"`
	DiscountPercent float64     `json:"discount_percent"`
	DemandLevel     DemandLevel `json:"demand_level"`
	DemandRatio     float64     `json:"demand_ratio"`
	Stock           int         `json:"stock"`
	Sales7Days      int         `json:"sales_7_days"`
	Sales30Days     int         `json:"sales_30_days"`
}
