package models

// Location represents a job site where assembly work happens.
// ContactPerson, ContactInfo and Notes are optional.
type Location struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson,omitempty"`
	ContactInfo   string `json:"contactInfo,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
