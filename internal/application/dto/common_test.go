package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storemanager/inventario-api/internal/domain"
)

func TestValidateCreateProduct(t *testing.T) {
	ok := CreateProductRequest{
		Nombre:       "Arroz Diana 500g",
		CodigoBarras: "7701234567890",
		Stock:        10,
		StockMinimo:  2,
		UnidadMedida: "unidad",
	}
	require.NoError(t, Validate(ok))

	sinNombre := ok
	sinNombre.Nombre = ""
	assert.ErrorIs(t, Validate(sinNombre), domain.ErrInvalidInput)

	stockNegativo := ok
	stockNegativo.Stock = -1
	assert.ErrorIs(t, Validate(stockNegativo), domain.ErrInvalidInput)
}

func TestValidateUpdateProductParcial(t *testing.T) {
	// Un update vacío es válido: todos los campos son opcionales.
	require.NoError(t, Validate(UpdateProductRequest{}))

	negativo := int64(-5)
	assert.ErrorIs(t, Validate(UpdateProductRequest{Stock: &negativo}), domain.ErrInvalidInput)
}

func TestValidateRegister(t *testing.T) {
	require.NoError(t, Validate(RegisterRequest{Email: "a@b.com", Password: "12345678"}))

	assert.ErrorIs(t, Validate(RegisterRequest{Email: "no-es-email", Password: "12345678"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, Validate(RegisterRequest{Email: "a@b.com", Password: "corta"}), domain.ErrInvalidInput)
}

func TestValidateMovementRequest(t *testing.T) {
	require.NoError(t, Validate(MovementRequest{Tipo: "salida", Cantidad: 1}))
	assert.ErrorIs(t, Validate(MovementRequest{Cantidad: 1}), domain.ErrInvalidInput)
}
