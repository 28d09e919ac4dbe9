package postgres

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isRetryable verifica si un error de Postgres es transitorio: fallo de
// serialización, deadlock, lock no disponible, query cancelada por timeout,
// o timeout de conexión.
func isRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03", "57014":
			return true
		}
	}
	return false
}

// prefixUpperBound devuelve la cota superior exclusiva del rango lexicográfico
// que cubre todas las cadenas con el prefijo dado (incrementa el último rune
// incrementable). Con ella el filtro por prefijo se expresa como
// nombre >= prefijo AND nombre < cota. Devuelve "" si no hay cota
// (prefijo vacío o compuesto solo por runes máximos).
func prefixUpperBound(prefix string) string {
	runes := []rune(prefix)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i] + 1
		if r > utf8.MaxRune {
			continue
		}
		// Saltar el rango de surrogates, inválido en UTF-8.
		if r >= 0xD800 && r <= 0xDFFF {
			r = 0xE000
		}
		runes[i] = r
		return string(runes[:i+1])
	}
	return ""
}
