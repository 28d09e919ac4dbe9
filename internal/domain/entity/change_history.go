package entity

import (
	"encoding/json"
	"time"
)

// ChangeHistory es una entrada del historial de cambios de un producto:
// snapshot parcial antes/después de cada mutación. Solo se escribe, el motor
// nunca la lee de vuelta.
type ChangeHistory struct {
	ID        string
	ProductID string
	Before    json.RawMessage // estado parcial anterior ({} para movimientos solo-auditoría)
	After     json.RawMessage // estado parcial nuevo
	User      string
	Date      time.Time
}
