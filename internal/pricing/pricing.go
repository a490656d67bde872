// Package pricing holds the pure computation behind assembly-record
// line items: tax-adjusted unit prices, item and record totals, and
// per-employee aggregates. Nothing in here touches I/O, so every
// function is deterministic and safe to call from any layer.
package pricing

import (
	"math"

	"furnitrack/internal/models"
)

// ItemEntry is a raw line item as entered in the form, before pricing.
type ItemEntry struct {
	ID       string
	Name     string
	Quantity int
	Price    float64
}

// EmployeeTotals aggregates all assembly records of one employee.
type EmployeeTotals struct {
	// TotalEarnings is the sum of record totals.
	TotalEarnings float64

	// TotalUnitsAssembled is the sum of item quantities across all
	// items in all of the employee's records.
	TotalUnitsAssembled int
}

// round2 rounds half away from zero to 2 decimal places. Applied at
// the final step of each derived value, never at intermediate steps.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemPricing computes the tax-adjusted unit price and the line total
// for one item: priceWithTax = price - price*rate/100, and
// totalItemPriceWithTax = priceWithTax * quantity, each rounded to
// 2 decimals.
func ItemPricing(price float64, quantity int, taxRatePercent float64) (priceWithTax, totalItemPriceWithTax float64) {
	priceWithTax = round2(price - price*taxRatePercent/100)
	totalItemPriceWithTax = round2(priceWithTax * float64(quantity))
	return priceWithTax, totalItemPriceWithTax
}

// PriceItems turns raw form entries into fully priced assembly items
// using the deduction percentage in effect right now. This is the
// submission-time snapshot: the resulting values are stored as-is and
// never recomputed when the setting later changes.
func PriceItems(entries []ItemEntry, taxRatePercent float64) []models.AssemblyItem {
	items := make([]models.AssemblyItem, len(entries))
	for i, e := range entries {
		withTax, total := ItemPricing(e.Price, e.Quantity, taxRatePercent)
		items[i] = models.AssemblyItem{
			ID:                    e.ID,
			Name:                  e.Name,
			Quantity:              e.Quantity,
			Price:                 e.Price,
			PriceWithTax:          withTax,
			TotalItemPriceWithTax: total,
		}
	}
	return items
}

// RecordTotal sums the line totals of all items. The sum is exact, no
// extra rounding on top of the already-rounded item totals.
func RecordTotal(items []models.AssemblyItem) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalItemPriceWithTax
	}
	return total
}

// RecordQuantity sums the item quantities. Missing quantities count as
// zero and the result does not depend on item order.
func RecordQuantity(items []models.AssemblyItem) int {
	var quantity int
	for _, item := range items {
		quantity += item.Quantity
	}
	return quantity
}

// AggregateByEmployee filters records by employee and sums their totals
// and per-item quantities. Records referencing other employees are
// ignored, including dangling references to deleted ones.
func AggregateByEmployee(records []models.AssemblyRecord, employeeID string) EmployeeTotals {
	var agg EmployeeTotals
	for _, record := range records {
		if record.EmployeeID != employeeID {
			continue
		}
		agg.TotalEarnings += record.TotalPrice
		agg.TotalUnitsAssembled += RecordQuantity(record.Items)
	}
	return agg
}
