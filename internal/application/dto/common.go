package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/storemanager/inventario-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida la forma de un request según sus tags `validate`.
// Retorna domain.ErrInvalidInput (envuelto) si alguna regla falla.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
