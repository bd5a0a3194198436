package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement representa una entrada del libro de movimientos de stock.
// Es inmutable: una vez creado no existe camino de edición ni borrado.
// BalanceAfter es el saldo del producto inmediatamente después del movimiento
// (snapshot para auditoría, nunca recalculado).
type StockMovement struct {
	ID           string
	ProductID    string
	UserID       string
	Type         string // in, out
	Quantity     int64  // siempre positivo; el signo lo da Type
	MovementDate time.Time
	BalanceAfter int64
	Note         string
	CreatedAt    time.Time
}

// MovementWithNames es un movimiento enriquecido con los nombres del producto
// y del usuario que lo registró, para listados.
type MovementWithNames struct {
	StockMovement
	ProductName string
	UserName    string
}
