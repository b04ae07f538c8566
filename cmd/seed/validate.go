package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/freshmart/dynamic-pricing/internal/dataset"
)

// runValidate loads a groceries CSV and prints its shape. A file the
// server would refuse at startup fails here with the same error.
func runValidate(c *cli.Context) error {
	path := c.String("csv")

	table, err := dataset.LoadCSV(path)
	if err != nil {
		return fmt.Errorf("dataset invalid: %w", err)
	}

	ids := make(map[int]int)
	for _, p := range table.All() {
		ids[p.ProductID]++
	}
	duplicates := 0
	for _, n := range ids {
		if n > 1 {
			duplicates++
		}
	}

	fmt.Printf("dataset:    %s\n", path)
	fmt.Printf("products:   %d\n", table.Len())
	fmt.Printf("categories: %d %v\n", len(table.Categories()), table.Categories())
	fmt.Printf("max stock:  %d\n", table.MaxStock())
	if duplicates > 0 {
		fmt.Printf("warning:    %d duplicate product ids (first occurrence wins)\n", duplicates)
	}
	if table.MaxStock() == 0 {
		return fmt.Errorf("all products have zero stock, inventory level would be undefined")
	}

	return nil
}
