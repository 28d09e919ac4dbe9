package repository

import "github.com/storemanager/inventario-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para alertas de stock crítico (append-only, DIP).
type AlertRepository interface {
	Create(alert *entity.Alert) error
	// ListRecent devuelve las alertas más recientes, fecha descendente.
	ListRecent(limit int) ([]*entity.Alert, error)
}
