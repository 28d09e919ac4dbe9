package dto

import (
	"encoding/json"
	"time"
)

// MovementRequest body para registrar un movimiento de inventario.
// IDProducto se toma del path en POST /api/productos/:id/stock y del body en
// POST /api/movimientos.
type MovementRequest struct {
	IDProducto string `json:"idProducto,omitempty"`
	Tipo       string `json:"tipo" validate:"required"`
	Cantidad   int64  `json:"cantidad"`
	Razon      string `json:"razon,omitempty"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID         string    `json:"id"`
	IDProducto string    `json:"idProducto"`
	Tipo       string    `json:"tipo"`
	Cantidad   int64     `json:"cantidad"`
	Razon      string    `json:"razon,omitempty"`
	Usuario    string    `json:"usuario"`
	Fecha      time.Time `json:"fecha"`
}

// StockResponse resultado de una actualización de stock.
type StockResponse struct {
	IDProducto string `json:"idProducto"`
	Stock      int64  `json:"stock"`
}

// AlertResponse representación de una alerta de stock crítico.
type AlertResponse struct {
	ID             string    `json:"id"`
	ProductoID     string    `json:"productoId"`
	NombreProducto string    `json:"nombreProducto"`
	StockActual    int64     `json:"stockActual"`
	StockMinimo    int64     `json:"stockMinimo"`
	Mensaje        string    `json:"mensaje"`
	Usuario        string    `json:"usuario"`
	Fecha          time.Time `json:"fecha"`
}

// HistoryResponse entrada del historial de cambios de un producto.
type HistoryResponse struct {
	ID         string          `json:"id"`
	ProductoID string          `json:"productoId"`
	Antes      json.RawMessage `json:"antes"`
	Despues    json.RawMessage `json:"despues"`
	Usuario    string          `json:"usuario"`
	Fecha      time.Time       `json:"fecha"`
}
