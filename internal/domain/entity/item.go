package entity

// Stock status values for Item. Anything else is ignored by the aggregator.
const (
	StatusActive   = "active"
	StatusLowStock = "low_stock"
	StatusExpired  = "expired"
)

// Item is the unified ingredient/product record. Ingredients and products
// share one shape and live in separate collections; a "product" is the same
// record managed from a different screen.
//
// Dates are stored as DD/MM/YYYY strings and Price as a display string with
// the currency suffix appended ("50000đ"); see internal/domain/format for the
// tolerant parsing rules. Category is a free-text label: it should match a
// Category.Name for the aggregator to count it, but nothing enforces that and
// a dangling label silently counts as zero.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"` // data URL or external reference
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	ImportDate  string `json:"importDate"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Supplier    string `json:"supplier,omitempty"`
	Employee    string `json:"employee,omitempty"` // stock checker
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Status      string `json:"status,omitempty"`
}
