package repository

import (
	"context"

	"github.com/tu-usuario/cantina-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Solo Create y lecturas: las entradas son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent lista los movimientos más recientes (created_at DESC, id ASC
	// como desempate estable), con nombre de producto y de usuario.
	ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithNames, error)
	Count(ctx context.Context) (int64, error)
}
