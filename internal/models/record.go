package models

// AssemblyItem is a single furniture position inside an assembly record.
// Items are embedded in their record and persisted as one serialized
// blob, not as standalone rows.
type AssemblyItem struct {
	// ID identifies the item within its record (UUID format).
	ID string `json:"id"`

	// Name is the furniture description (e.g., "Wardrobe PAX").
	Name string `json:"name"`

	// Quantity is the number of units assembled.
	Quantity int `json:"quantity"`

	// Price is the unit price before the deduction.
	Price float64 `json:"price"`

	// PriceWithTax is the unit price after the configured percentage
	// deduction, rounded to 2 decimals. Computed once at submission
	// time; never recomputed when the setting changes.
	PriceWithTax float64 `json:"priceWithTax"`

	// TotalItemPriceWithTax is PriceWithTax * Quantity, rounded to
	// 2 decimals.
	TotalItemPriceWithTax float64 `json:"totalItemPriceWithTax"`
}

// AssemblyRecord is one job entry: an employee, an optional location,
// a date, and the list of furniture items assembled with pricing.
type AssemblyRecord struct {
	ID string `json:"id"`

	// EmployeeID references an Employee. The reference may dangle if
	// the employee was deleted; that is tolerated, not cleaned up.
	EmployeeID string `json:"employeeId"`

	// LocationID optionally references a Location. Same dangling
	// semantics as EmployeeID.
	LocationID string `json:"locationId,omitempty"`

	// Date is the job date as a date string (YYYY-MM-DD).
	Date string `json:"date"`

	// Items are the priced line items. Stored as a JSON blob and
	// deserialized back into a list on every read.
	Items []AssemblyItem `json:"items"`

	// Quantity is the sum of item quantities. Derived server-side from
	// Items on every insert and update; any client-sent value is
	// discarded.
	Quantity int `json:"quantity"`

	// TotalPrice is the sum of item totals. Computed by the client
	// before submission and persisted as given.
	TotalPrice float64 `json:"totalPrice"`

	Notes string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
