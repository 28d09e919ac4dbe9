package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/storemanager/inventario-api/internal/domain"
	"github.com/storemanager/inventario-api/internal/domain/entity"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, codigo_barras, descripcion, precio_venta, stock, stock_minimo, unidad_medida, categoria, ubicacion_tienda, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Barcode, product.Description, product.SalePrice,
		product.Stock, product.MinStock, product.UnitMeasure, product.Category,
		product.StoreLocation, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto y bloquea la fila hasta el fin de la
// transacción (SELECT FOR UPDATE). Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Description, &p.SalePrice, &p.Stock, &p.MinStock,
		&p.UnitMeasure, &p.Category, &p.StoreLocation, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza todos los campos editables de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre = $2, codigo_barras = $3, descripcion = $4, precio_venta = $5,
		    stock = $6, stock_minimo = $7, unidad_medida = $8, categoria = $9,
		    ubicacion_tienda = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Barcode, product.Description, product.SalePrice,
		product.Stock, product.MinStock, product.UnitMeasure, product.Category,
		product.StoreLocation, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija solo el campo stock (usado por el motor de inventario
// dentro de la transacción que bloqueó la fila).
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List consulta productos según el filtro. El filtro de nombre es un rango
// lexicográfico semiabierto [prefijo, cota) con collate "C" para que el orden
// sea byte a byte; barcode y categoría filtran por igualdad. Los criterios se
// combinan con AND. Sin coincidencias devuelve lista vacía.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos`
	args := []any{}
	if !filter.Empty() {
		conds := []string{}
		if filter.Name != "" {
			if upper := prefixUpperBound(filter.Name); upper != "" {
				conds = append(conds, fmt.Sprintf(`nombre COLLATE "C" >= $%d AND nombre COLLATE "C" < $%d`, len(args)+1, len(args)+2))
				args = append(args, filter.Name, upper)
			} else {
				conds = append(conds, fmt.Sprintf(`nombre COLLATE "C" >= $%d`, len(args)+1))
				args = append(args, filter.Name)
			}
		}
		if filter.Barcode != "" {
			conds = append(conds, fmt.Sprintf(`codigo_barras = $%d`, len(args)+1))
			args = append(args, filter.Barcode)
		}
		if filter.Category != "" {
			conds = append(conds, fmt.Sprintf(`categoria = $%d`, len(args)+1))
			args = append(args, filter.Category)
		}
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY nombre ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.Description, &p.SalePrice,
			&p.Stock, &p.MinStock, &p.UnitMeasure, &p.Category, &p.StoreLocation,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. No hay borrado en cascada: movimientos,
// alertas e historial del producto se conservan como auditoría.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
