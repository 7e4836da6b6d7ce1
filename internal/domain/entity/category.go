package entity

// Category status values.
const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

// Category classifies items by name match only; items hold the category
// name, not an owning reference. ProductCount is denormalized and recomputed
// on read by the stats aggregator; the stored value is never trusted.
// Deleting a category does not cascade to items referencing it.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
	CreatedDate  string `json:"createdDate"` // DD/MM/YYYY
	Status       string `json:"status,omitempty"`
	Color        string `json:"color,omitempty"`
}
