package dto

// SaveCategoryRequest is the create/update input for categories.
type SaveCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Color       string `json:"color"`
}

// CategoryResponse is the outward category shape. ProductCount is always the
// recomputed live value.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
	CreatedDate  string `json:"createdDate"`
	Status       string `json:"status,omitempty"`
	Color        string `json:"color,omitempty"`
}

// CategoryListResponse is a paginated category listing.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CategoryStatsResponse buckets one category's items by stock status.
type CategoryStatsResponse struct {
	ProductCount int `json:"productCount"`
	Active       int `json:"active"`
	LowStock     int `json:"lowStock"`
	Expired      int `json:"expired"`
}
