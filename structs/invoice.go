package structs

import "github.com/google/uuid"

type InvoiceRequest struct {
	SupplierId  uuid.UUID `json:"supplier_id" validate:"required,uuid4"`
	Number      string    `json:"number" validate:"required,min=1,max=50"`
	SiteId      uuid.UUID `json:"site_id" validate:"required,uuid4"`
	Description string    `json:"description" validate:"required,min=2,max=300"`
	Date        string    `json:"date" validate:"required"`
	DueDate     string    `json:"due_date,omitempty"`
	TotalCents  int64     `json:"total_cents" validate:"required,gt=0"`
	Status      string    `json:"status,omitempty"`
}

type InvoiceUpdateRequest struct {
	Number      *string `json:"number,omitempty" validate:"omitempty,min=1,max=50"`
	SiteId      *uuid.UUID `json:"site_id,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=2,max=300"`
	Date        *string `json:"date,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	TotalCents  *int64  `json:"total_cents,omitempty" validate:"omitempty,gt=0"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
}
