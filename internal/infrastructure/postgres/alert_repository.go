package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storemanager/inventario-api/internal/domain/entity"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación append-only del puerto AlertRepository sobre
// PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta de stock crítico.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	query := `
		INSERT INTO alertas_inventario (id, producto_id, nombre_producto, stock_actual, stock_minimo, mensaje, usuario, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.ProductName, alert.CurrentStock,
		alert.MinStock, alert.Message, alert.User, alert.Date,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListRecent devuelve las alertas más recientes, fecha descendente.
func (r *AlertRepo) ListRecent(limit int) ([]*entity.Alert, error) {
	query := `
		SELECT id, producto_id, nombre_producto, stock_actual, stock_minimo, mensaje, usuario, fecha
		FROM alertas_inventario ORDER BY fecha DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	list := []*entity.Alert{}
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.CurrentStock,
			&a.MinStock, &a.Message, &a.User, &a.Date); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
