package tables

import (
	"time"

	"github.com/google/uuid"
)

// Site is a physical location that owns a block of fixed-asset codes.
// Prefix is assigned once at creation and never rewritten; AssetSeq is
// only ever advanced by the code allocator inside a transaction.
type Site struct {
	tableName struct{}  `bun:"table:sites,alias:s"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=150"`
	City      string    `bun:"city,notnull" json:"city" validate:"required,min=2,max=100"`
	Address   string    `bun:"address,notnull" json:"address" validate:"required,min=2,max=200"`

	// 4-character uppercase alphanumeric, unique across all sites (e.g. MSOA)
	Prefix string `bun:"prefix,notnull,unique" json:"prefix" validate:"required,len=4"`

	// Monotonic counter behind fixed-asset codes for this site
	AssetSeq int64 `bun:"asset_seq,notnull,default:0" json:"asset_seq"`

	// Selects the letterhead/logo used when rendering delivery acts
	CompanyId *string `bun:"company_id" json:"company_id,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
