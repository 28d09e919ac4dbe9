package repository

import "github.com/storemanager/inventario-api/internal/domain/entity"

// ProductFilter criterios de consulta de productos. Los filtros se combinan con AND.
// Name filtra por prefijo (rango lexicográfico semiabierto [Name, cota superior)).
// Barcode y Category filtran por igualdad exacta.
type ProductFilter struct {
	Name     string
	Barcode  string
	Category string
}

// Empty indica si no hay ningún criterio activo.
func (f ProductFilter) Empty() bool {
	return f.Name == "" && f.Barcode == "" && f.Category == ""
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la
	// transacción. Solo tiene sentido sobre un Querier transaccional.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija únicamente el campo stock (usado por el motor de inventario).
	UpdateStock(productID string, stock int64) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}
