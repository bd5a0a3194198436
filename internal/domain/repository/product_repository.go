package repository

import (
	"context"

	"github.com/tu-usuario/cantina-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity actualiza solo el stock (usado por el motor de movimientos).
	UpdateQuantity(ctx context.Context, productID string, quantity int64) error
	// GetForUpdate bloquea la fila del producto para la sección crítica
	// leer-calcular-escribir del registro de movimientos.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// List lista por nombre ascendente; search vacío = todos (filtro ILIKE).
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock devuelve productos con min_stock > 0 y quantity < min_stock,
	// ordenados por nombre.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}
