// Package sessionrepo resolves bearer tokens against the sessions table.
// Sessions are minted by the external identity provider; this package only
// reads them to authenticate API requests.
package sessionrepo

import (
	"time"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure of a session row.
type SessionDTO struct {
	Token     string    `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for session rows.
func (SessionDTO) TableName() string {
	return "sessions"
}
