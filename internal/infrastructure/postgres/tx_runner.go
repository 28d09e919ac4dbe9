package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storemanager/inventario-api/internal/application/inventory"
	"github.com/storemanager/inventario-api/internal/domain"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El bloqueo de fila (SELECT FOR UPDATE) dentro del callback serializa los
// movimientos concurrentes sobre un mismo producto.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Fallos de conexión, commit, timeouts y deadlocks se
// clasifican como domain.ErrTransient; los errores de dominio pasan tal cual.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	history repository.HistoryRepository,
	alerts repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrTransient, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := NewProductRepository(tx)
	movements := NewMovementRepository(tx)
	history := NewHistoryRepository(tx)
	alerts := NewAlertRepository(tx)

	if err := fn(products, movements, history, alerts); err != nil {
		if isRetryable(err) {
			return fmt.Errorf("%w: %v", domain.ErrTransient, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrTransient, err)
	}
	return nil
}
