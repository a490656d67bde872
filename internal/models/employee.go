package models

// Employee represents an assembler on the payroll.
type Employee struct {
	// ID is the unique identifier (UUID format), assigned by the client
	// before creation.
	ID string `json:"id"`

	// Name is the employee's display name.
	Name string `json:"name"`

	// Position is the job title (e.g., "Senior Assembler").
	Position string `json:"position"`

	// Rate is the per-unit pay rate.
	Rate float64 `json:"rate"`

	// HireDate is the hire date as a date string (YYYY-MM-DD).
	HireDate string `json:"hireDate"`

	// ContactInfo holds free-form contact details (phone, email).
	ContactInfo string `json:"contactInfo"`

	// CreatedAt and UpdatedAt are server-stamped ISO-8601 timestamps.
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
