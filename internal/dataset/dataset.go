// internal/dataset/dataset.go
package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// Table holds the product dataset in memory, in its original load
// order. It is built once at startup and read-only afterwards, so
// concurrent request handlers may scan it without locking.
type Table struct {
	products []domain.Product
}

// New builds a Table from rows in their source order. Rows with a
// non-positive base price are rejected outright since they make the
// discount computation undefined. Duplicate product ids are kept
// (first match wins on lookup) but warned about, since the source data
// promises uniqueness without enforcing it.
func New(rows []domain.Product) (*Table, error) {
	seen := make(map[int]bool, len(rows))
	for _, p := range rows {
		if p.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: product %d has non-positive base_price %v",
				domain.ErrInvalidInput, p.ProductID, p.BasePrice)
		}
		if p.Stock < 0 || p.Sales7 < 0 || p.Sales30 < 0 {
			return nil, fmt.Errorf("%w: product %d has negative counters",
				domain.ErrInvalidInput, p.ProductID)
		}
		if seen[p.ProductID] {
			log.Warn().Int("product_id", p.ProductID).Msg("duplicate product id, keeping first occurrence")
		}
		seen[p.ProductID] = true
	}

	return &Table{products: rows}, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.products)
}

// All returns every product in original dataset order. Callers must
// not mutate the returned slice.
func (t *Table) All() []domain.Product {
	return t.products
}

// FindByID returns the first product with the given id, or
// domain.ErrNotFound.
func (t *Table) FindByID(id int) (domain.Product, error) {
	for _, p := range t.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
}

// FindByCategory returns all products whose category matches name
// case-insensitively, in dataset order. An empty result means the
// category does not exist.
func (t *Table) FindByCategory(name string) []domain.Product {
	var out []domain.Product
	for _, p := range t.products {
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category names sorted ascending.
func (t *Table) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range t.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// MaxStock returns the maximum stock across the dataset. It is a plain
// scan, recomputed per call; the table is immutable so this is safe and
// cheap at the expected dataset sizes.
func (t *Table) MaxStock() int {
	max := 0
	for _, p := range t.products {
		if p.Stock > max {
			max = p.Stock
		}
	}
	return max
}

// Totals returns the dataset-wide stock and sales sums plus the mean
// base price, used by the insights rollup.
func (t *Table) Totals() (stock, sales7, sales30 int, meanPrice float64) {
	var priceSum float64
	for _, p := range t.products {
		stock += p.Stock
		sales7 += p.Sales7
		sales30 += p.Sales30
		priceSum += p.BasePrice
	}
	if len(t.products) > 0 {
		meanPrice = priceSum / float64(len(t.products))
	}
	return stock, sales7, sales30, meanPrice
}
