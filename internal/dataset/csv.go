// internal/dataset/csv.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// csvColumns are the required header columns of a groceries CSV file.
var csvColumns = []string{"product_id", "name", "category", "base_price", "stock", "sales_7", "sales_30", "day"}

// LoadCSV reads the product table from a groceries CSV file. The file
// must carry a header row naming at least the required columns; column
// order is free. Row order in the file becomes the table's canonical
// order.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return New(rows)
}

func parseCSV(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var products []domain.Product
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		p, err := parseRow(record, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	return products, nil
}

func parseRow(record []string, idx map[string]int) (domain.Product, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var p domain.Product
	var err error

	if p.ProductID, err = strconv.Atoi(field("product_id")); err != nil {
		return p, fmt.Errorf("product_id: %w", err)
	}
	p.Name = field("name")
	p.Category = field("category")
	if p.BasePrice, err = strconv.ParseFloat(field("base_price"), 64); err != nil {
		return p, fmt.Errorf("base_price: %w", err)
	}
	if p.Stock, err = strconv.Atoi(field("stock")); err != nil {
		return p, fmt.Errorf("stock: %w", err)
	}
	if p.Sales7, err = strconv.Atoi(field("sales_7")); err != nil {
		return p, fmt.Errorf("sales_7: %w", err)
	}
	if p.Sales30, err = strconv.Atoi(field("sales_30")); err != nil {
		return p, fmt.Errorf("sales_30: %w", err)
	}
	if p.Day, err = strconv.Atoi(field("day")); err != nil {
		return p, fmt.Errorf("day: %w", err)
	}

	return p, nil
}
