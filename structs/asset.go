package structs

import (
	"time"

	"github.com/google/uuid"
)

type AssetRequest struct {
	SiteId        uuid.UUID `json:"site_id" validate:"required,uuid4"`
	Type          string    `json:"type" validate:"required"`
	Brand         string    `json:"brand" validate:"required,min=1,max=100"`
	Model         string    `json:"model" validate:"required,min=1,max=100"`
	Serial        string    `json:"serial" validate:"required,min=1,max=100"`
	InternalPlate string    `json:"internal_plate,omitempty"`
	Status        string    `json:"status,omitempty"`

	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	CostCents    int64      `json:"cost_cents,omitempty"`

	Processor string `json:"processor,omitempty"`
	RAM       string `json:"ram,omitempty"`
	Storage   string `json:"storage,omitempty"`
	OS        string `json:"os,omitempty"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// AssetUpdateRequest covers the descriptive fields only. The code, the site
// affiliation and the move bookkeeping change exclusively through relocation.
type AssetUpdateRequest struct {
	Type          *string `json:"type,omitempty"`
	Brand         *string `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	Model         *string `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Serial        *string `json:"serial,omitempty" validate:"omitempty,min=1,max=100"`
	InternalPlate *string `json:"internal_plate,omitempty"`
	Status        *string `json:"status,omitempty"`

	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	CostCents    *int64     `json:"cost_cents,omitempty"`

	Processor *string `json:"processor,omitempty"`
	RAM       *string `json:"ram,omitempty"`
	Storage   *string `json:"storage,omitempty"`
	OS        *string `json:"os,omitempty"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type RelocateAssetRequest struct {
	NewSiteId uuid.UUID `json:"new_site_id" validate:"required,uuid4"`
}

type AssignAssetRequest struct {
	AssignedToName     string `json:"assigned_to_name" validate:"required,min=2,max=100"`
	AssignedToPosition string `json:"assigned_to_position" validate:"required,min=2,max=100"`
}
