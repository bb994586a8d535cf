package tables

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	tableName  struct{}  `bun:"table:invoices,alias:i"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	SupplierId uuid.UUID `bun:"supplier_id,notnull,type:uuid" json:"supplier_id" validate:"required,uuid4"`

	// Supplier's invoice number as typed by the operator. Uniqueness per
	// supplier is checked on the normalized form (uppercase, alphanumerics only).
	Number string    `bun:"number,notnull" json:"number" validate:"required,min=1,max=50"`
	SiteId uuid.UUID `bun:"site_id,notnull,type:uuid" json:"site_id" validate:"required,uuid4"`

	Description string        `bun:"description,notnull" json:"description" validate:"required,min=2,max=300"`
	Date        string        `bun:"date,notnull" json:"date" validate:"required"`     // YYYY-MM-DD, radication date
	DueDate     string        `bun:"due_date" json:"due_date,omitempty"`               // YYYY-MM-DD
	TotalCents  int64         `bun:"total_cents,notnull" json:"total_cents" validate:"required,gt=0"`
	Status      InvoiceStatus `bun:"status,notnull,default:'pending'" json:"status" validate:"required,oneof=pending paid"`

	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)
