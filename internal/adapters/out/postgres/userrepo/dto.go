// Package userrepo persists the role side of user profiles. Profile rows are
// owned by the identity subsystem; this package only reads the role column
// and applies administrative role changes.
package userrepo

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure of a user profile row.
type ProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:text;uniqueIndex"`
	FullName  string    `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(16);index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for profile rows.
func (ProfileDTO) TableName() string {
	return "profiles"
}
