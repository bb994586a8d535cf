package tables

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one entry of the maintenance / support log a technician files
// against a site, optionally tied to a specific asset.
type Activity struct {
	tableName struct{}  `bun:"table:activities,alias:ac"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Date      string    `bun:"date,notnull" json:"date" validate:"required"` // YYYY-MM-DD
	TechName  string    `bun:"tech_name,notnull" json:"tech_name" validate:"required,min=2,max=100"`
	SiteId    uuid.UUID `bun:"site_id,notnull,type:uuid" json:"site_id" validate:"required,uuid4"`
	AssetId   *uuid.UUID `bun:"asset_id,type:uuid" json:"asset_id,omitempty"`

	Description      string           `bun:"description,notnull" json:"description" validate:"required,min=2,max=500"`
	Type             ActivityType     `bun:"type,notnull" json:"type" validate:"required,oneof='Soporte Usuario' Requerimiento Capacitacion Otro"`
	Priority         ActivityPriority `bun:"priority,notnull,default:'media'" json:"priority" validate:"required,oneof=alta media baja"`
	TimeSpentMinutes int              `bun:"time_spent_minutes" json:"time_spent_minutes,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

type ActivityType string

const (
	ActivityTypeSoporte       ActivityType = "Soporte Usuario"
	ActivityTypeRequerimiento ActivityType = "Requerimiento"
	ActivityTypeCapacitacion  ActivityType = "Capacitacion"
	ActivityTypeOtro          ActivityType = "Otro"
)

type ActivityPriority string

const (
	ActivityPriorityAlta  ActivityPriority = "alta"
	ActivityPriorityMedia ActivityPriority = "media"
	ActivityPriorityBaja  ActivityPriority = "baja"
)
