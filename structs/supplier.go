package structs

type SupplierRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	NIT         string `json:"nit" validate:"required,min=5,max=30"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Category    string `json:"category,omitempty"`
}
