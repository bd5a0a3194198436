package inventory

import (
	"context"

	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el registro de movimientos: entrada del libro y
// saldo del producto se escriben juntos o no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
