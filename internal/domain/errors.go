package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUsernameAlreadyUsed = errors.New("el username ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)

// InsufficientStockError detalla un rechazo por stock insuficiente:
// producto, stock actual y cantidad solicitada. errors.Is contra
// ErrInsufficientStock devuelve true.
type InsufficientStockError struct {
	ProductName string
	Current     int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %q: actual=%d, solicitado=%d",
		e.ProductName, e.Current, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
