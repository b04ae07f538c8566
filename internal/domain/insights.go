// internal/domain/insights.go
package domain

// TopDemandProduct is one entry of the top-demand ranking.
type TopDemandProduct struct {
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	DemandRatio float64 `json:"demand_ratio"`
}

// LowStockAlert flags a product whose stock dropped below the alert
// threshold.
type LowStockAlert struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// CategoryStats aggregates one category of the product table.
type CategoryStats struct {
	ProductCount int     `json:"product_count"`
	BasePrice    float64 `json:"base_price"`
	Stock        int     `json:"stock"`
	Sales7       int     `json:"sales_7"`
}

// Insights is the whole-dataset rollup served by the analytics endpoint.
type Insights struct {
	TotalProducts      int                      `json:"total_products"`
	TotalStock         int                      `json:"total_stock"`
	TotalSales7Days    int                      `json:"total_sales_7days"`
	TotalSales30Days   int                      `json:"total_sales_30days"`
	AveragePrice       float64                  `json:"average_price"`
	TopDemandProducts  []TopDemandProduct       `json:"top_demand_products"`
	LowStockAlerts     []LowStockAlert          `json:"low_stock_alerts"`
	CategoryStatistics map[string]CategoryStats `json:"category_statistics"`
}
