package repository

import "github.com/jcastro/personas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las consultas ven únicamente registros activos; la baja es lógica.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Count() (int, error)
}
