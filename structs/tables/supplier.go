package tables

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	tableName   struct{}  `bun:"table:suppliers,alias:sp"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name        string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=150"`
	NIT         string    `bun:"nit,notnull" json:"nit" validate:"required,min=5,max=30"`
	ContactName string    `bun:"contact_name" json:"contact_name,omitempty"`
	Phone       string    `bun:"phone" json:"phone,omitempty"`
	Email       string    `bun:"email" json:"email,omitempty" validate:"omitempty,email"`
	Category    string    `bun:"category" json:"category,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
