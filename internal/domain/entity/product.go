package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda.
// Stock es un entero que nunca baja de cero; se modifica únicamente vía movimientos
// (UpdateStock) o por edición directa de un administrador.
type Product struct {
	ID            string
	Name          string          // nombre (normalizado NFC)
	Barcode       string          // codigoBarras
	Description   string          // descripcion
	SalePrice     decimal.Decimal // precioVenta
	Stock         int64           // unidades actuales, >= 0
	MinStock      int64           // stockMinimo: umbral de alerta
	UnitMeasure   string          // unidadMedida (unidad, kg, litro, ...)
	Category      string          // categoria
	StoreLocation string          // ubicacionTienda (pasillo, estante)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
