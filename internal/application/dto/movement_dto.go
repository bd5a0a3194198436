package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// MovementDate en formato YYYY-MM-DD; vacío = fecha del día.
type RegisterMovementRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Type         string `json:"type" validate:"required,oneof=in out"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
	MovementDate string `json:"movement_date" validate:"omitempty,datetime=2006-01-02"`
	Note         string `json:"note" validate:"max=500"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	MovementDate string    `json:"movement_date"`
	BalanceAfter int64     `json:"balance_after"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListItem movimiento enriquecido para el listado reciente.
type MovementListItem struct {
	MovementResponse
	ProductName string `json:"product_name"`
	UserName    string `json:"user_name"`
}

// MovementListResponse listado de movimientos recientes.
type MovementListResponse struct {
	Items []MovementListItem `json:"items"`
	Total int                `json:"total"`
}

// InsufficientStockDetail detalle del rechazo por stock insuficiente.
type InsufficientStockDetail struct {
	ProductName string `json:"product_name"`
	Current     int64  `json:"current"`
	Requested   int64  `json:"requested"`
}
