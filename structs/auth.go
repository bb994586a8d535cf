package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims are the verified claims of an access token issued by the
// external identity service. Role resolution happens there; this backend
// only reads the result.
type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

// Roles known to the inventory application
const (
	RoleAdmin      = "admin"
	RoleTech       = "tech"
	RoleAuditor    = "auditor"
	RoleManagement = "management"
)
