package visits

import "time"

// Visit es una visita clínica de una mascota. PetID no cambia después de crearla.
type Visit struct {
	ID          string
	PetID       string
	Date        time.Time // solo fecha, medianoche UTC
	Description string
}

// Draft es lo que manda el caller para crear una visita. ID opcional: si viene,
// reintentar la creación con el mismo ID es idempotente.
type Draft struct {
	ID          string
	Date        time.Time // cero = hoy
	Description string
}

// DateOnly normaliza a medianoche UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
