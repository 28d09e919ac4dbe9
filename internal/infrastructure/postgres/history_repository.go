package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storemanager/inventario-api/internal/domain/entity"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación append-only del puerto HistoryRepository sobre
// PostgreSQL (usable con pool o tx). Los snapshots antes/después se guardan
// como JSONB.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Create persiste una entrada del historial de cambios.
func (r *HistoryRepo) Create(entry *entity.ChangeHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historial_cambios (id, producto_id, antes, despues, usuario, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Before, entry.After, entry.User, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("insert change history: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de un producto, fecha descendente.
func (r *HistoryRepo) ListByProduct(productID string) ([]*entity.ChangeHistory, error) {
	query := `
		SELECT id, producto_id, antes, despues, usuario, fecha
		FROM historial_cambios WHERE producto_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list change history: %w", err)
	}
	defer rows.Close()
	list := []*entity.ChangeHistory{}
	for rows.Next() {
		var h entity.ChangeHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.Before, &h.After, &h.User, &h.Date); err != nil {
			return nil, fmt.Errorf("scan change history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
