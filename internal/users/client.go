// Package users adapts the external users service to the orchestrator's
// RoleDirectory contract.
package users

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	usersv1 "agenda-service/gen/users/v1"
	"agenda-service/internal/apperr"
	"agenda-service/internal/model"
)

type Client struct {
	users usersv1.UserServiceClient
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{users: usersv1.NewUserServiceClient(cc)}
}

// Role looks up userID's role using token as the caller credential. Directory
// failures (unauthenticated token, unknown subject, unreachable service)
// surface as internal errors; an out-of-range role value is treated as a
// malformed response, never as a grant.
func (c *Client) Role(ctx context.Context, token, userID int64) (model.Role, error) {
	resp, err := c.users.GetUserRole(ctx, &usersv1.GetUserRoleRequest{
		Token:  token,
		UserId: userID,
	})
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("users service: %w", err))
	}

	switch resp.UserType {
	case usersv1.UserType_PACIENTE:
		return model.RolePaciente, nil
	case usersv1.UserType_MEDICO:
		return model.RoleMedico, nil
	case usersv1.UserType_RECEPCIONISTA:
		return model.RoleRecepcionista, nil
	case usersv1.UserType_ADMINISTRADOR:
		return model.RoleAdministrador, nil
	default:
		return "", apperr.Internal(fmt.Errorf("users service: unknown role %d for user %d", resp.UserType, userID))
	}
}
