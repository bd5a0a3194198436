package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Quantity es la carga inicial; después solo cambia vía movimientos.
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Brand       string `json:"brand" validate:"max=100"`
	Model       string `json:"model" validate:"max=100"`
	Description string `json:"description"`
	Unit        string `json:"unit" validate:"max=20"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	MinStock    int64  `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// No permite modificar Quantity: el stock se maneja vía movimientos.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Brand       *string `json:"brand" validate:"omitempty,max=100"`
	Model       *string `json:"model" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Unit        *string `json:"unit" validate:"omitempty,max=20"`
	MinStock    *int64  `json:"min_stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	Quantity    int64     `json:"quantity"`
	MinStock    int64     `json:"min_stock"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
