package sessionrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionStore implements SessionStore using GORM.
type GormSessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSessionStore creates a new GORM session store.
func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{
		db:  db,
		now: time.Now,
	}
}

// Resolve returns the user id for a live session token. Unknown and expired
// tokens are indistinguishable to the caller; both are unauthorized.
func (s *GormSessionStore) Resolve(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing session token")
	}

	var dto SessionDTO
	err := s.db.WithContext(ctx).First(&dto, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewUnauthorizedError("unknown session token")
		}
		return kernel.UUID{}, err
	}

	if !dto.ExpiresAt.After(s.now()) {
		return kernel.UUID{}, errs.NewUnauthorizedError("session expired")
	}

	return kernel.UUIDFromBytes(dto.UserID[:])
}
