package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetRole returns the role recorded for the given user.
func (r *GormUserRepository) GetRole(ctx context.Context, id kernel.UUID) (user.Role, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	var dto ProfileDTO
	err := r.db.WithContext(ctx).Select("role").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("user", id.String())
		}
		return "", err
	}

	return user.RoleFromString(dto.Role)
}

// UpdateRole records a new role for the given user.
func (r *GormUserRepository) UpdateRole(ctx context.Context, id kernel.UUID, role user.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := role.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).
		Where("id = ?", id.Bytes()).
		Update("role", role.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}
