package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/productos.
// Los nombres de campo JSON siguen el formato de la app móvil.
type CreateProductRequest struct {
	Nombre          string          `json:"nombre" validate:"required"`
	CodigoBarras    string          `json:"codigoBarras" validate:"required"`
	Descripcion     string          `json:"descripcion"`
	PrecioVenta     decimal.Decimal `json:"precioVenta"`
	Stock           int64           `json:"stock" validate:"min=0"`
	StockMinimo     int64           `json:"stockMinimo" validate:"min=0"`
	UnidadMedida    string          `json:"unidadMedida" validate:"required"`
	Categoria       string          `json:"categoria"`
	UbicacionTienda string          `json:"ubicacionTienda"`
}

// UpdateProductRequest body para PUT /api/productos/:id. Merge parcial: solo
// los campos presentes se aplican.
type UpdateProductRequest struct {
	Nombre          *string          `json:"nombre,omitempty"`
	CodigoBarras    *string          `json:"codigoBarras,omitempty"`
	Descripcion     *string          `json:"descripcion,omitempty"`
	PrecioVenta     *decimal.Decimal `json:"precioVenta,omitempty"`
	Stock           *int64           `json:"stock,omitempty" validate:"omitempty,min=0"`
	StockMinimo     *int64           `json:"stockMinimo,omitempty" validate:"omitempty,min=0"`
	UnidadMedida    *string          `json:"unidadMedida,omitempty"`
	Categoria       *string          `json:"categoria,omitempty"`
	UbicacionTienda *string          `json:"ubicacionTienda,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	CodigoBarras    string          `json:"codigoBarras"`
	Descripcion     string          `json:"descripcion"`
	PrecioVenta     decimal.Decimal `json:"precioVenta"`
	Stock           int64           `json:"stock"`
	StockMinimo     int64           `json:"stockMinimo"`
	UnidadMedida    string          `json:"unidadMedida"`
	Categoria       string          `json:"categoria"`
	UbicacionTienda string          `json:"ubicacionTienda"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
