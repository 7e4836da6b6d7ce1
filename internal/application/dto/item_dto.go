package dto

// SaveItemRequest is the create/update input for ingredients and products.
// ImportDate accepts DD/MM/YYYY or YYYY-MM-DD; anything else falls back (to
// today on create, to the stored date on update). Price may arrive with or
// without the currency suffix.
type SaveItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Unit        string `json:"unit"`
	ImportDate  string `json:"importDate"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Supplier    string `json:"supplier"`
	Employee    string `json:"employee"`
	ExpiryDate  string `json:"expiryDate"`
	Status      string `json:"status"`
}

// AdjustItemRequest changes only the stock quantity, by a signed delta.
type AdjustItemRequest struct {
	Delta int    `json:"delta" validate:"required"`
	Note  string `json:"note"`
}

// ImportItemsRequest receives a batch of incoming stock records.
type ImportItemsRequest struct {
	Items []SaveItemRequest `json:"items" validate:"required,min=1"`
}

// ItemResponse is the outward item shape.
type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	ImportDate  string `json:"importDate"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Supplier    string `json:"supplier,omitempty"`
	Employee    string `json:"employee,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ItemListResponse is a paginated item listing.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
