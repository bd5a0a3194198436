package inventory

import (
	"context"

	"github.com/tu-usuario/cantina-api/internal/application/dto"
	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// MovementQueryUseCase consultas read-only sobre el libro de movimientos y
// el reporte de stock bajo. Sin efectos secundarios.
type MovementQueryUseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementQueryUseCase construye el caso de uso de consultas.
func NewMovementQueryUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// ListRecentMovements devuelve los `limit` movimientos más recientes
// (created_at DESC, id ASC como desempate), con nombre de producto y usuario.
func (uc *MovementQueryUseCase) ListRecentMovements(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	list, err := uc.movementRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementListItem, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementListItem{
			MovementResponse: *toMovementResponse(&m.StockMovement),
			ProductName:      m.ProductName,
			UserName:         m.UserName,
		})
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// LowStockReport devuelve los productos con min_stock > 0 cuyo stock actual
// está estrictamente por debajo del umbral, ordenados por nombre.
// Umbral en 0 significa "sin monitoreo" y queda excluido.
func (uc *MovementQueryUseCase) LowStockReport(ctx context.Context) ([]dto.LowStockProductDTO, error) {
	products, err := uc.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	report := make([]dto.LowStockProductDTO, 0, len(products))
	for _, p := range products {
		report = append(report, dto.LowStockProductDTO{
			ID:       p.ID,
			SKU:      p.SKU,
			Name:     p.Name,
			Unit:     p.Unit,
			Quantity: p.Quantity,
			MinStock: p.MinStock,
		})
	}
	return report, nil
}
