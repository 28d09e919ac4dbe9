package repository

import "github.com/storemanager/inventario-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos (append-only, DIP).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListAll devuelve todos los movimientos ordenados por fecha descendente.
	ListAll() ([]*entity.Movement, error)
	// ListByProduct devuelve los movimientos de un producto, fecha descendente.
	ListByProduct(productID string) ([]*entity.Movement, error)
}
