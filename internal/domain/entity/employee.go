package entity

// Employee is a back-office user. FullName is the actor recorded on history
// events. PasswordHash is a bcrypt hash; it is persisted with the collection
// but never leaves through the API layer.
type Employee struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"fullname"`
	Role         string `json:"role"` // "admin" | "staff"
	Status       string `json:"status,omitempty"`
	CreatedDate  string `json:"createdDate"` // DD/MM/YYYY
	PasswordHash string `json:"passwordHash,omitempty"`
}
