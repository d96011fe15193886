package service

import (
	"errors"
	"time"
)

const fechaCorta = "2006-01-02"

// parseFecha accepts the two formats clients send: plain dates and RFC 3339
// timestamps.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(fechaCorta, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("fecha inválida: " + s)
}

func formatFecha(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatFechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatFecha(*t)
	return &s
}
