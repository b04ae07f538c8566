package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/freshmart/dynamic-pricing/internal/domain"
)

const floatTol = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

func TestDerive_Formulas(t *testing.T) {
	p := domain.Product{
		ProductID: 1,
		BasePrice: 4.0,
		Stock:     9,
		Sales7:    20,
		Sales30:   80,
		Day:       3,
	}

	f, err := Derive(p, 99)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !almostEqual(f.DemandRatio, 2.0) {
		t.Errorf("demand_ratio: got %v, want 2.0", f.DemandRatio)
	}
	if !almostEqual(f.InventoryLevel, 9.0/99.0) {
		t.Errorf("inventory_level: got %v, want %v", f.InventoryLevel, 9.0/99.0)
	}
	if !almostEqual(f.SalesTrend, 80.0/21.0) {
		t.Errorf("sales_trend: got %v, want %v", f.SalesTrend, 80.0/21.0)
	}
	if !almostEqual(f.Popularity, 80.0/(4.0*9.0+1)) {
		t.Errorf("popularity: got %v, want %v", f.Popularity, 80.0/(4.0*9.0+1))
	}
	if !almostEqual(f.Scarcity, 0.1) {
		t.Errorf("scarcity: got %v, want 0.1", f.Scarcity)
	}
	if f.Day != 3 {
		t.Errorf("day: got %v, want 3", f.Day)
	}
}

func TestDerive_ZeroCountersSafe(t *testing.T) {
	// stock=0, sales_7=0 must not divide by zero anywhere
	p := domain.Product{ProductID: 2, BasePrice: 10, Stock: 0, Sales7: 0, Sales30: 0, Day: 1}

	f, err := Derive(p, 50)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if f.DemandRatio != 0 {
		t.Errorf("demand_ratio: got %v, want 0", f.DemandRatio)
	}
	if f.Scarcity != 1 {
		t.Errorf("scarcity: got %v, want 1", f.Scarcity)
	}
	if f.InventoryLevel != 0 {
		t.Errorf("inventory_level: got %v, want 0", f.InventoryLevel)
	}
	for i, v := range f.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("feature %d is not finite: %v", i, v)
		}
	}
}

func TestDerive_AllZeroStockDatasetRejected(t *testing.T) {
	p := domain.Product{ProductID: 3, BasePrice: 10, Stock: 0, Sales7: 0, Sales30: 0, Day: 1}

	_, err := Derive(p, 0)
	if err == nil {
		t.Fatal("expected error for maxStock=0, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	p := domain.Product{ProductID: 4, BasePrice: 2.49, Stock: 60, Sales7: 95, Sales30: 380, Day: 5}

	first, err := Derive(p, 200)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		again, err := Derive(p, 200)
		if err != nil {
			t.Fatalf("Derive failed on call %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("Derive not deterministic: call %d gave %+v, first gave %+v", i, again, first)
		}
	}
}

func TestDemandRatio_MatchesDerive(t *testing.T) {
	p := domain.Product{ProductID: 5, BasePrice: 3.49, Stock: 5, Sales7: 42, Sales30: 165, Day: 6}

	f, err := Derive(p, 200)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !almostEqual(DemandRatio(p), f.DemandRatio) {
		t.Errorf("DemandRatio %v does not match Derive %v", DemandRatio(p), f.DemandRatio)
	}
}
