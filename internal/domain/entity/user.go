package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleVendedor   = "vendedor"
	RoleComprador  = "comprador"
	RoleAlmacenero = "almacenero"
	RoleContador   = "contador"
)

// ValidRole indica si role pertenece al conjunto de roles del sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleVendedor, RoleComprador, RoleAlmacenero, RoleContador:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID             string
	Email          string
	HashedPassword string // bcrypt hash, nunca plano en dominio después de persistir
	FullName       string
	Role           string // admin, vendedor, comprador, almacenero, contador
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
