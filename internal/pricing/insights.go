// internal/pricing/insights.go
package pricing

import (
	"sort"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// topDemandLimit caps the high-demand ranking.
const topDemandLimit = 10

// Insights scans the whole dataset and builds the analytics rollup:
// totals, the top demand ranking, low-stock alerts and per-category
// aggregates. Recomputed fresh on every call.
func (e *Engine) Insights() domain.Insights {
	products := e.table.All()
	totalStock, totalSales7, totalSales30, meanPrice := e.table.Totals()

	return domain.Insights{
		TotalProducts:      len(products),
		TotalStock:         totalStock,
		TotalSales7Days:    totalSales7,
		TotalSales30Days:   totalSales30,
		AveragePrice:       round2(meanPrice),
		TopDemandProducts:  topDemand(products, topDemandLimit),
		LowStockAlerts:     lowStock(products),
		CategoryStatistics: categoryStats(products),
	}
}

// topDemand ranks products by descending demand ratio. The sort is
// stable so ties keep their original dataset order.
func topDemand(products []domain.Product, limit int) []domain.TopDemandProduct {
	ranked := make([]domain.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return DemandRatio(ranked[i]) > DemandRatio(ranked[j])
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]domain.TopDemandProduct, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, domain.TopDemandProduct{
			ProductID:   p.ProductID,
			Name:        p.Name,
			DemandRatio: DemandRatio(p),
		})
	}
	return out
}

func lowStock(products []domain.Product) []domain.LowStockAlert {
	out := make([]domain.LowStockAlert, 0)
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			out = append(out, domain.LowStockAlert{
				ProductID: p.ProductID,
				Name:      p.Name,
				Stock:     p.Stock,
			})
		}
	}
	return out
}

func categoryStats(products []domain.Product) map[string]domain.CategoryStats {
	sums := make(map[string]float64)
	stats := make(map[string]domain.CategoryStats)
	for _, p := range products {
		s := stats[p.Category]
		s.ProductCount++
		s.Stock += p.Stock
		s.Sales7 += p.Sales7
		sums[p.Category] += p.BasePrice
		stats[p.Category] = s
	}
	for cat, s := range stats {
		s.BasePrice = round2(sums[cat] / float64(s.ProductCount))
		stats[cat] = s
	}
	return stats
}
