package repository

import (
	"context"

	"github.com/tu-usuario/cantina-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// No hay Delete: el libro de movimientos conserva a su autor, un usuario
// se da de baja cambiando su status a inactive.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
