package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (cajero, gerente o administrador).
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, manager, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
