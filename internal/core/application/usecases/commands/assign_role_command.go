package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAssignRoleCommandIsNotConstructed = errors.New(
		"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
	)
)

// AssignRoleCommand represents an administrative request to change a
// user's role.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewAssignRoleCommand creates a command to assign a role to a user.
// Validates the user id and that the role is one of the known roles.
func NewAssignRoleCommand(userID kernel.UUID, role user.Role) (AssignRoleCommand, error) {
	roleCommand := AssignRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setUserID(userID),
		roleCommand.setRole(role),
	); err != nil {
		return AssignRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose role changes.
func (c AssignRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to assign.
func (c AssignRoleCommand) Role() user.Role {
	return c.role
}

func (c *AssignRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AssignRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
