package inventory

import (
	"context"

	"github.com/storemanager/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el bloqueo de fila del producto
// (GetForUpdate) y el fan-out a historial, movimientos y alertas se confirmen
// como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
		history repository.HistoryRepository,
		alerts repository.AlertRepository,
	) error) error
}

// AdminChecker responde si un usuario tiene privilegio de administrador.
// Se inyecta como capacidad para que el motor sea testeable con un fake.
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
