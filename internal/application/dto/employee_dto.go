package dto

// CreateEmployeeRequest registers a back-office account.
type CreateEmployeeRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullname" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
	Status   string `json:"status"`
}

// UpdateEmployeeRequest patches an account; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	Password *string `json:"password" validate:"omitempty,min=6"`
	FullName *string `json:"fullname"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff"`
	Status   *string `json:"status"`
}

// EmployeeResponse is the outward account shape. The password hash never
// appears here.
type EmployeeResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullname"`
	Role        string `json:"role"`
	Status      string `json:"status,omitempty"`
	CreatedDate string `json:"createdDate"`
}

// EmployeeListResponse lists accounts.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
}
