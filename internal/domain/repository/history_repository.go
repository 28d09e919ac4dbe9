package repository

import "github.com/storemanager/inventario-api/internal/domain/entity"

// HistoryRepository define el puerto de persistencia para el historial de cambios (append-only, DIP).
type HistoryRepository interface {
	Create(entry *entity.ChangeHistory) error
	// ListByProduct devuelve el historial de un producto, fecha descendente.
	ListByProduct(productID string) ([]*entity.ChangeHistory, error)
}
