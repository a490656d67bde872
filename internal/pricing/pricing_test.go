package pricing

import (
	"math"
	"testing"

	"furnitrack/internal/models"
)

func TestItemPricing(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		quantity  int
		taxRate   float64
		wantPrice float64
		wantTotal float64
	}{
		{
			name:      "20 percent deduction on 100",
			price:     100,
			quantity:  2,
			taxRate:   20,
			wantPrice: 80.00,
			wantTotal: 160.00,
		},
		{
			name:      "zero deduction keeps the price",
			price:     49.99,
			quantity:  3,
			taxRate:   0,
			wantPrice: 49.99,
			wantTotal: 149.97,
		},
		{
			name:      "full deduction zeroes the price",
			price:     250,
			quantity:  1,
			taxRate:   100,
			wantPrice: 0,
			wantTotal: 0,
		},
		{
			name:      "rounding happens at the final step",
			price:     10.05,
			quantity:  3,
			taxRate:   13,
			wantPrice: 8.74, // 10.05 - 1.3065 = 8.7435 -> 8.74
			wantTotal: 26.22, // 8.74 * 3, not round(8.7435*3)
		},
		{
			name:      "free item stays free",
			price:     0,
			quantity:  5,
			taxRate:   20,
			wantPrice: 0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPrice, gotTotal := ItemPricing(tt.price, tt.quantity, tt.taxRate)
			if math.Abs(gotPrice-tt.wantPrice) > 1e-9 {
				t.Errorf("priceWithTax = %v, want %v", gotPrice, tt.wantPrice)
			}
			if math.Abs(gotTotal-tt.wantTotal) > 1e-9 {
				t.Errorf("totalItemPriceWithTax = %v, want %v", gotTotal, tt.wantTotal)
			}
		})
	}
}

func TestItemPricingNeverExceedsPrice(t *testing.T) {
	// For any non-negative price and rate in [0,100] the adjusted price
	// must not exceed the raw price.
	prices := []float64{0, 0.01, 1, 99.99, 100, 12345.67}
	rates := []float64{0, 0.5, 13, 20, 50, 99.9, 100}
	for _, price := range prices {
		for _, rate := range rates {
			withTax, _ := ItemPricing(price, 1, rate)
			if withTax > price+1e-9 {
				t.Errorf("ItemPricing(%v, 1, %v) = %v, exceeds price", price, rate, withTax)
			}
		}
	}
}

func TestPriceItems(t *testing.T) {
	entries := []ItemEntry{
		{ID: "i1", Name: "Wardrobe", Quantity: 2, Price: 100},
		{ID: "i2", Name: "Desk", Quantity: 1, Price: 62.50},
	}

	items := PriceItems(entries, 20)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	if items[0].PriceWithTax != 80.00 || items[0].TotalItemPriceWithTax != 160.00 {
		t.Errorf("item 0 pricing = (%v, %v), want (80, 160)",
			items[0].PriceWithTax, items[0].TotalItemPriceWithTax)
	}
	if items[1].PriceWithTax != 50.00 || items[1].TotalItemPriceWithTax != 50.00 {
		t.Errorf("item 1 pricing = (%v, %v), want (50, 50)",
			items[1].PriceWithTax, items[1].TotalItemPriceWithTax)
	}

	// Raw entry fields carry over untouched.
	if items[0].ID != "i1" || items[0].Name != "Wardrobe" || items[0].Quantity != 2 || items[0].Price != 100 {
		t.Errorf("item 0 raw fields not preserved: %+v", items[0])
	}
}

func TestRecordTotal(t *testing.T) {
	items := []models.AssemblyItem{
		{TotalItemPriceWithTax: 160.00},
		{TotalItemPriceWithTax: 50.00},
	}
	if got := RecordTotal(items); math.Abs(got-210.00) > 1e-9 {
		t.Errorf("RecordTotal = %v, want 210.00", got)
	}

	if got := RecordTotal(nil); got != 0 {
		t.Errorf("RecordTotal(nil) = %v, want 0", got)
	}
}

func TestRecordQuantity(t *testing.T) {
	items := []models.AssemblyItem{
		{Quantity: 2},
		{Quantity: 3},
		{}, // missing quantity counts as zero
	}
	if got := RecordQuantity(items); got != 5 {
		t.Errorf("RecordQuantity = %d, want 5", got)
	}

	// Invariant under reordering.
	reordered := []models.AssemblyItem{items[2], items[1], items[0]}
	if got := RecordQuantity(reordered); got != 5 {
		t.Errorf("RecordQuantity(reordered) = %d, want 5", got)
	}
}

func TestAggregateByEmployee(t *testing.T) {
	records := []models.AssemblyRecord{
		{
			EmployeeID: "e1",
			TotalPrice: 160.00,
			Items:      []models.AssemblyItem{{Quantity: 2}},
		},
		{
			EmployeeID: "e2",
			TotalPrice: 999.00,
			Items:      []models.AssemblyItem{{Quantity: 9}},
		},
		{
			EmployeeID: "e1",
			TotalPrice: 50.00,
			Items:      []models.AssemblyItem{{Quantity: 1}, {Quantity: 4}},
		},
	}

	agg := AggregateByEmployee(records, "e1")
	if math.Abs(agg.TotalEarnings-210.00) > 1e-9 {
		t.Errorf("TotalEarnings = %v, want 210.00", agg.TotalEarnings)
	}
	if agg.TotalUnitsAssembled != 7 {
		t.Errorf("TotalUnitsAssembled = %d, want 7", agg.TotalUnitsAssembled)
	}

	if agg := AggregateByEmployee(records, "nobody"); agg != (EmployeeTotals{}) {
		t.Errorf("expected zero totals for unknown employee, got %+v", agg)
	}
}
