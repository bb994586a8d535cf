package tables

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	tableName struct{}  `bun:"table:assets,alias:a"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`

	// Auto-generated code, format PREFIX-NNN (e.g. MSOA-001). Unique at any
	// point in time; replaced only by a relocation, never edited by hand.
	FixedAssetId string    `bun:"fixed_asset_id,notnull,unique" json:"fixed_asset_id"`
	SiteId       uuid.UUID `bun:"site_id,notnull,type:uuid" json:"site_id" validate:"required,uuid4"`

	Type          AssetType   `bun:"type,notnull" json:"type" validate:"required,oneof=laptop desktop monitor keyboard mouse printer scanner network other"`
	Brand         string      `bun:"brand,notnull" json:"brand" validate:"required,min=1,max=100"`
	Model         string      `bun:"model,notnull" json:"model" validate:"required,min=1,max=100"`
	Serial        string      `bun:"serial,notnull" json:"serial" validate:"required,min=1,max=100"`
	InternalPlate string      `bun:"internal_plate" json:"internal_plate,omitempty"`
	Status        AssetStatus `bun:"status,notnull,default:'bodega'" json:"status" validate:"required,oneof=bodega asignado mantenimiento baja"`

	// Purchase data
	PurchaseDate *time.Time `bun:"purchase_date" json:"purchase_date,omitempty"`
	CostCents    int64      `bun:"cost_cents" json:"cost_cents"`

	// Hardware details
	Processor string `bun:"processor" json:"processor,omitempty"`
	RAM       string `bun:"ram" json:"ram,omitempty"`
	Storage   string `bun:"storage" json:"storage,omitempty"`
	OS        string `bun:"os" json:"os,omitempty"`

	Notes string `bun:"notes" json:"notes,omitempty" validate:"omitempty,max=500"`

	// Current assignment snapshot (empty when the asset sits in storage)
	AssignedToName     string     `bun:"assigned_to_name" json:"assigned_to_name,omitempty"`
	AssignedToPosition string     `bun:"assigned_to_position" json:"assigned_to_position,omitempty"`
	AssignedAt         *time.Time `bun:"assigned_at,nullzero" json:"assigned_at,omitempty"`

	// Codes this asset held before relocations, most recent last, capped at 10
	PreviousFixedAssetIds []string   `bun:"previous_fixed_asset_ids,array" json:"previous_fixed_asset_ids,omitempty"`
	MovedAt               *time.Time `bun:"moved_at,nullzero" json:"moved_at,omitempty"`
	MovedFromSiteId       *uuid.UUID `bun:"moved_from_site_id,type:uuid" json:"moved_from_site_id,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

type AssetStatus string

const (
	AssetStatusBodega        AssetStatus = "bodega"
	AssetStatusAsignado      AssetStatus = "asignado"
	AssetStatusMantenimiento AssetStatus = "mantenimiento"
	AssetStatusBaja          AssetStatus = "baja"
)

type AssetType string

const (
	AssetTypeLaptop  AssetType = "laptop"
	AssetTypeDesktop AssetType = "desktop"
	AssetTypeMonitor AssetType = "monitor"
	AssetTypeKeyboard AssetType = "keyboard"
	AssetTypeMouse   AssetType = "mouse"
	AssetTypePrinter AssetType = "printer"
	AssetTypeScanner AssetType = "scanner"
	AssetTypeNetwork AssetType = "network"
	AssetTypeOther   AssetType = "other"
)
