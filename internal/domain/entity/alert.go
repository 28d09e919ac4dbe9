package entity

import "time"

// Alert es una notificación de stock crítico generada cuando el stock resultante
// de un movimiento queda en o por debajo del stock mínimo del producto. Inmutable.
type Alert struct {
	ID           string
	ProductID    string
	ProductName  string // snapshot del nombre al momento de la alerta
	CurrentStock int64  // stockActual resultante
	MinStock     int64  // stockMinimo vigente
	Message      string
	User         string
	Date         time.Time
}
