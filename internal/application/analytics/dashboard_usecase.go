// Package analytics contiene el caso de uso del panel principal de la cantina.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cantina-api/internal/application/dto"
	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel: total de productos, total de
// movimientos y la lista de productos con stock bajo.
//
// Fuente de datos: los repositorios read-only; no toca las tablas directamente.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. Count de productos
//  2. Count de movimientos
//  3. Lista de productos bajo umbral (min_stock > 0 y quantity < min_stock)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type lowStockResult struct {
		items []dto.LowStockProductDTO
		err   error
	}

	productsCh := make(chan countResult, 1)
	movementsCh := make(chan countResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.productRepo.Count(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.movementRepo.Count(ctx)
		movementsCh <- countResult{n, err}
	}()
	go func() {
		products, err := uc.productRepo.ListLowStock(ctx)
		if err != nil {
			lowStockCh <- lowStockResult{nil, err}
			return
		}
		items := make([]dto.LowStockProductDTO, 0, len(products))
		for _, p := range products {
			items = append(items, dto.LowStockProductDTO{
				ID:       p.ID,
				SKU:      p.SKU,
				Name:     p.Name,
				Unit:     p.Unit,
				Quantity: p.Quantity,
				MinStock: p.MinStock,
			})
		}
		lowStockCh <- lowStockResult{items, nil}
	}()

	products := <-productsCh
	movements := <-movementsCh
	lowStock := <-lowStockCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: total de movimientos: %w", movements.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:  products.n,
		TotalMovements: movements.n,
		LowStock:       lowStock.items,
	}, nil
}
