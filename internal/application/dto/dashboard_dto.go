package dto

// LowStockProductDTO producto por debajo de su umbral de monitoreo.
type LowStockProductDTO struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Quantity int64  `json:"quantity"`
	MinStock int64  `json:"min_stock"`
}

// DashboardSummaryDTO resumen para el panel principal: los dos contadores
// y la lista de productos con stock bajo.
type DashboardSummaryDTO struct {
	TotalProducts  int64                `json:"total_products"`
	TotalMovements int64                `json:"total_movements"`
	LowStock       []LowStockProductDTO `json:"low_stock"`
}
