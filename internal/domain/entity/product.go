package entity

import "time"

// Product representa un producto de la cantina escolar.
// Quantity solo se modifica vía movimientos de stock (salvo la carga inicial);
// MinStock en 0 significa "sin monitoreo de stock bajo".
type Product struct {
	ID          string
	SKU         string
	Name        string
	Brand       string
	Model       string
	Description string
	Unit        string // unidad de medida (ej: "un", "kg", "cx")
	Quantity    int64  // stock actual, nunca negativo
	MinStock    int64  // umbral de stock bajo (0 = sin monitoreo)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está por debajo de su umbral de monitoreo.
func (p *Product) IsLowStock() bool {
	return p.MinStock > 0 && p.Quantity < p.MinStock
}
