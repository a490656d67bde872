package models

// Settings is the application-wide singleton configuration. Exactly one
// row exists, created with defaults on first boot and only ever updated
// in place.
type Settings struct {
	// CompanyName is shown in the client header and on exports.
	CompanyName string `json:"companyName"`

	// DefaultPercentage is the deduction percentage applied to item
	// prices at submission time. Valid range is [0,100].
	DefaultPercentage float64 `json:"defaultPercentage"`

	UpdatedAt string `json:"updatedAt,omitempty"`
}
