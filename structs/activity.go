package structs

import "github.com/google/uuid"

type ActivityRequest struct {
	Date             string     `json:"date" validate:"required"`
	TechName         string     `json:"tech_name" validate:"required,min=2,max=100"`
	SiteId           uuid.UUID  `json:"site_id" validate:"required,uuid4"`
	AssetId          *uuid.UUID `json:"asset_id,omitempty"`
	Description      string     `json:"description" validate:"required,min=2,max=500"`
	Type             string     `json:"type" validate:"required"`
	Priority         string     `json:"priority,omitempty"`
	TimeSpentMinutes int        `json:"time_spent_minutes,omitempty"`
}
