package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves user profile listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user listing queries.
// Requires a GORM database connection for query execution.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query and returns user profiles sorted by creation time.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			email,
			full_name,
			role,
			created_at
		FROM profiles`
	args := make([]any, 0, 3)
	if query.Role() != nil {
		sql += "\n\t\tWHERE role = ?"
		args = append(args, query.Role().String())
	}
	sql += "\n\t\tORDER BY created_at DESC\n\t\tLIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]GetUsersQueryResponse, 0)

	for rows.Next() {
		var userResp GetUsersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&userResp.Email,
			&userResp.FullName,
			&userResp.Role,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		userResp.ID = userID
		userResp.CreatedAt = createdAt
		users = append(users, userResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
