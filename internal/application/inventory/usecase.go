package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/storemanager/inventario-api/internal/application/dto"
	"github.com/storemanager/inventario-api/internal/domain"
	"github.com/storemanager/inventario-api/internal/domain/entity"
	"github.com/storemanager/inventario-api/internal/domain/repository"
)

// Cantidad de alertas devueltas por ListAlerts.
const recentAlertsLimit = 50

// UseCase es el motor de inventario: valida movimientos, actualiza stock de
// forma transaccional (bloqueo de fila) y escribe el fan-out a historial,
// movimientos y alertas. Toda operación mutadora pasa primero por el
// AdminChecker; si el caller no es administrador no se toca el store.
type UseCase struct {
	txRunner  TxRunner
	products  repository.ProductRepository
	movements repository.MovementRepository
	history   repository.HistoryRepository
	alerts    repository.AlertRepository
	admins    AdminChecker
}

// NewUseCase construye el motor con sus dependencias explícitas.
func NewUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	movements repository.MovementRepository,
	history repository.HistoryRepository,
	alerts repository.AlertRepository,
	admins AdminChecker,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		products:  products,
		movements: movements,
		history:   history,
		alerts:    alerts,
		admins:    admins,
	}
}

// requireAdmin resuelve el privilegio del caller. Si el oráculo falla o
// responde no-admin, la operación termina sin lecturas ni escrituras.
func (uc *UseCase) requireAdmin(ctx context.Context, uid string) error {
	ok, err := uc.admins.IsAdmin(ctx, uid)
	if err != nil || !ok {
		return domain.ErrAccessDenied
	}
	return nil
}

// validateMovement aplica las reglas de negocio de un movimiento:
// tipo dentro del conjunto permitido, cantidad no negativa y razón obligatoria
// para merma.
func validateMovement(tipo string, cantidad int64, razon string) error {
	if !entity.ValidMovementType(tipo) {
		return domain.ErrInvalidInput
	}
	if cantidad < 0 {
		return domain.ErrInvalidInput
	}
	if tipo == entity.MovementTypeMerma && strings.TrimSpace(razon) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// stockSnapshot estado parcial {stock: n} para el historial de cambios.
type stockSnapshot struct {
	Stock int64 `json:"stock"`
}

// movementSnapshot payload del movimiento tal como queda en el historial
// cuando se registra sin afectar stock.
type movementSnapshot struct {
	IDProducto string `json:"idProducto"`
	Tipo       string `json:"tipo"`
	Cantidad   int64  `json:"cantidad"`
	Razon      string `json:"razon,omitempty"`
}

// RegisterProduct registra un producto nuevo; el ID lo asigna el motor.
// No hay chequeo de umbral al registrar: un admin puede crear un producto ya
// en o por debajo de su stock mínimo.
func (uc *UseCase) RegisterProduct(ctx context.Context, uid string, in dto.CreateProductRequest) (string, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Nombre) == "" || in.Stock < 0 || in.StockMinimo < 0 || in.PrecioVenta.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          norm.NFC.String(strings.TrimSpace(in.Nombre)),
		Barcode:       in.CodigoBarras,
		Description:   in.Descripcion,
		SalePrice:     in.PrecioVenta,
		Stock:         in.Stock,
		MinStock:      in.StockMinimo,
		UnitMeasure:   in.UnidadMedida,
		Category:      in.Categoria,
		StoreLocation: in.UbicacionTienda,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// UpdateProduct aplica un merge parcial sobre el producto y deja constancia
// de los campos cambiados en el historial. No dispara alertas: la alerta es
// exclusiva del camino de movimientos.
func (uc *UseCase) UpdateProduct(ctx context.Context, uid, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	before := map[string]any{}
	after := map[string]any{}
	if in.Nombre != nil {
		nombre := norm.NFC.String(strings.TrimSpace(*in.Nombre))
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		before["nombre"], after["nombre"] = product.Name, nombre
		product.Name = nombre
	}
	if in.CodigoBarras != nil {
		before["codigoBarras"], after["codigoBarras"] = product.Barcode, *in.CodigoBarras
		product.Barcode = *in.CodigoBarras
	}
	if in.Descripcion != nil {
		before["descripcion"], after["descripcion"] = product.Description, *in.Descripcion
		product.Description = *in.Descripcion
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		before["precioVenta"], after["precioVenta"] = product.SalePrice, *in.PrecioVenta
		product.SalePrice = *in.PrecioVenta
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		before["stock"], after["stock"] = product.Stock, *in.Stock
		product.Stock = *in.Stock
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		before["stockMinimo"], after["stockMinimo"] = product.MinStock, *in.StockMinimo
		product.MinStock = *in.StockMinimo
	}
	if in.UnidadMedida != nil {
		before["unidadMedida"], after["unidadMedida"] = product.UnitMeasure, *in.UnidadMedida
		product.UnitMeasure = *in.UnidadMedida
	}
	if in.Categoria != nil {
		before["categoria"], after["categoria"] = product.Category, *in.Categoria
		product.Category = *in.Categoria
	}
	if in.UbicacionTienda != nil {
		before["ubicacionTienda"], after["ubicacionTienda"] = product.StoreLocation, *in.UbicacionTienda
		product.StoreLocation = *in.UbicacionTienda
	}
	if len(after) == 0 {
		return toProductResponse(product), nil
	}
	now := time.Now()
	product.UpdatedAt = now

	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.MovementRepository,
		history repository.HistoryRepository,
		_ repository.AlertRepository,
	) error {
		entry := &entity.ChangeHistory{
			ProductID: id,
			Before:    beforeJSON,
			After:     afterJSON,
			User:      uid,
			Date:      now,
		}
		if err := history.Create(entry); err != nil {
			return err
		}
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina el producto de forma permanente. Sus movimientos,
// alertas e historial quedan huérfanos a propósito: son pista de auditoría.
func (uc *UseCase) DeleteProduct(ctx context.Context, uid, id string) error {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return err
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

// RegisterMovement registra un movimiento solo-auditoría: escribe el
// movimiento y una entrada de historial con estado anterior vacío, sin tocar
// el producto ni su stock. Devuelve el ID del movimiento.
func (uc *UseCase) RegisterMovement(ctx context.Context, uid string, in dto.MovementRequest) (string, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return "", err
	}
	if in.IDProducto == "" {
		return "", domain.ErrInvalidInput
	}
	if err := validateMovement(in.Tipo, in.Cantidad, in.Razon); err != nil {
		return "", err
	}
	now := time.Now()
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.IDProducto,
		Type:      in.Tipo,
		Quantity:  in.Cantidad,
		Reason:    in.Razon,
		User:      uid,
		Date:      now,
	}
	afterJSON, err := json.Marshal(movementSnapshot{
		IDProducto: in.IDProducto,
		Tipo:       in.Tipo,
		Cantidad:   in.Cantidad,
		Razon:      in.Razon,
	})
	if err != nil {
		return "", err
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		movements repository.MovementRepository,
		history repository.HistoryRepository,
		_ repository.AlertRepository,
	) error {
		if err := movements.Create(mov); err != nil {
			return err
		}
		entry := &entity.ChangeHistory{
			ProductID: in.IDProducto,
			Before:    json.RawMessage(`{}`),
			After:     afterJSON,
			User:      uid,
			Date:      now,
		}
		return history.Create(entry)
	})
	if err != nil {
		return "", err
	}
	return mov.ID, nil
}

// UpdateStock aplica un movimiento sobre el stock de un producto dentro de una
// transacción con bloqueo de fila, de modo que movimientos concurrentes sobre
// el mismo producto se serialicen y el stock nunca quede negativo.
//
// Secuencia dentro de la tx: leer con FOR UPDATE, calcular, historial
// {stock: anterior} → {stock: nuevo}, escribir stock, registrar movimiento y,
// si el nuevo stock queda en o por debajo del mínimo, generar la alerta.
// Devuelve el stock resultante.
func (uc *UseCase) UpdateStock(ctx context.Context, uid, productID string, in dto.MovementRequest) (int64, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return 0, err
	}
	if err := validateMovement(in.Tipo, in.Cantidad, in.Razon); err != nil {
		return 0, err
	}
	now := time.Now()
	var newStock int64
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
		history repository.HistoryRepository,
		alerts repository.AlertRepository,
	) error {
		product, err := products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		current := product.Stock
		switch in.Tipo {
		case entity.MovementTypeEntrada:
			newStock = current + in.Cantidad
		case entity.MovementTypeSalida, entity.MovementTypeMerma:
			if in.Cantidad > current {
				return domain.ErrInsufficientStock
			}
			newStock = current - in.Cantidad
		case entity.MovementTypeAjuste:
			newStock = in.Cantidad
		}

		beforeJSON, err := json.Marshal(stockSnapshot{Stock: current})
		if err != nil {
			return err
		}
		afterJSON, err := json.Marshal(stockSnapshot{Stock: newStock})
		if err != nil {
			return err
		}
		entry := &entity.ChangeHistory{
			ProductID: productID,
			Before:    beforeJSON,
			After:     afterJSON,
			User:      uid,
			Date:      now,
		}
		if err := history.Create(entry); err != nil {
			return err
		}
		if err := products.UpdateStock(productID, newStock); err != nil {
			return err
		}
		mov := &entity.Movement{
			ProductID: productID,
			Type:      in.Tipo,
			Quantity:  in.Cantidad,
			Reason:    in.Razon,
			User:      uid,
			Date:      now,
		}
		if err := movements.Create(mov); err != nil {
			return err
		}
		if newStock <= product.MinStock {
			alert := &entity.Alert{
				ProductID:    productID,
				ProductName:  product.Name,
				CurrentStock: newStock,
				MinStock:     product.MinStock,
				Message:      fmt.Sprintf("Stock crítico: %s tiene %d unidades restantes", product.Name, newStock),
				User:         uid,
				Date:         now,
			}
			if err := alerts.Create(alert); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// ListProducts consulta productos. Con filtro vacío lista todo el catálogo.
// Un resultado vacío es una lista vacía, no un error.
func (uc *UseCase) ListProducts(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Name != "" {
		filter.Name = norm.NFC.String(filter.Name)
	}
	list, err := uc.products.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// ListMovements consulta movimientos (todos, o los de un producto si
// productID no es vacío), fecha descendente.
func (uc *UseCase) ListMovements(ctx context.Context, uid, productID string) ([]dto.MovementResponse, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return nil, err
	}
	var list []*entity.Movement
	var err error
	if productID == "" {
		list, err = uc.movements.ListAll()
	} else {
		list, err = uc.movements.ListByProduct(productID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:         m.ID,
			IDProducto: m.ProductID,
			Tipo:       m.Type,
			Cantidad:   m.Quantity,
			Razon:      m.Reason,
			Usuario:    m.User,
			Fecha:      m.Date,
		})
	}
	return items, nil
}

// ListAlerts devuelve las 50 alertas más recientes, fecha descendente.
func (uc *UseCase) ListAlerts(ctx context.Context, uid string) ([]dto.AlertResponse, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return nil, err
	}
	list, err := uc.alerts.ListRecent(recentAlertsLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AlertResponse{
			ID:             a.ID,
			ProductoID:     a.ProductID,
			NombreProducto: a.ProductName,
			StockActual:    a.CurrentStock,
			StockMinimo:    a.MinStock,
			Mensaje:        a.Message,
			Usuario:        a.User,
			Fecha:          a.Date,
		})
	}
	return items, nil
}

// ListHistory devuelve el historial de cambios de un producto, fecha descendente.
func (uc *UseCase) ListHistory(ctx context.Context, uid, productID string) ([]dto.HistoryResponse, error) {
	if err := uc.requireAdmin(ctx, uid); err != nil {
		return nil, err
	}
	list, err := uc.history.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, dto.HistoryResponse{
			ID:         h.ID,
			ProductoID: h.ProductID,
			Antes:      h.Before,
			Despues:    h.After,
			Usuario:    h.User,
			Fecha:      h.Date,
		})
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Nombre:          p.Name,
		CodigoBarras:    p.Barcode,
		Descripcion:     p.Description,
		PrecioVenta:     p.SalePrice,
		Stock:           p.Stock,
		StockMinimo:     p.MinStock,
		UnidadMedida:    p.UnitMeasure,
		Categoria:       p.Category,
		UbicacionTienda: p.StoreLocation,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
