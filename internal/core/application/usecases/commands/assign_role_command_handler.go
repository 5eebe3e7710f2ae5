package commands

import (
	"context"
)

// AssignRoleCommandHandler handles administrative role assignment.
type AssignRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAssignRoleCommandHandler creates a handler for role assignment.
func NewAssignRoleCommandHandler(uowFactory UserUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role assignment command.
// A single row is updated, so no transaction is opened.
func (h AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	return uow.UserRepository().UpdateRole(ctx, cmd.UserID(), cmd.Role())
}
