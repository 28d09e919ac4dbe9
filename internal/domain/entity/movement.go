package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada" // ingreso de unidades
	MovementTypeSalida  = "salida"  // venta o retiro
	MovementTypeMerma   = "merma"   // pérdida (dañado o vencido); requiere razón
	MovementTypeAjuste  = "ajuste"  // corrección absoluta: fija el stock en Quantity
)

// ValidMovementType indica si el tipo pertenece al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSalida, MovementTypeMerma, MovementTypeAjuste:
		return true
	}
	return false
}

// Movement registra un movimiento de inventario. Se crea una sola vez y es
// inmutable: el motor nunca lo actualiza ni lo elimina.
type Movement struct {
	ID        string
	ProductID string
	Type      string // entrada, salida, merma, ajuste
	Quantity  int64  // cantidad; para ajuste es el valor absoluto del stock
	Reason    string // razon; obligatoria cuando Type es merma
	User      string // UserID que ejecutó el movimiento
	Date      time.Time
}
