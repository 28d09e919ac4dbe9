package auth

import (
	"context"

	"github.com/storemanager/inventario-api/internal/domain/entity"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

// RoleChecker resuelve el privilegio de administrador consultando el
// repositorio de usuarios (role == admin). Implementa inventory.AdminChecker.
type RoleChecker struct {
	users repository.UserRepository
}

// NewRoleChecker construye el oráculo de identidad sobre el repo de usuarios.
func NewRoleChecker(users repository.UserRepository) *RoleChecker {
	return &RoleChecker{users: users}
}

// IsAdmin responde si el usuario existe y tiene rol admin.
func (c *RoleChecker) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := c.users.GetByID(uid)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role == entity.RoleAdmin, nil
}
