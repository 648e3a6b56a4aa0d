package pets

import (
	"strings"
	"time"
)

// PetType es el tipo de mascota. El id coincide con el nombre.
// @Enum bird, cat, dog, hamster, lizard, snake
type PetType string

const (
	TypeBird    PetType = "bird"
	TypeCat     PetType = "cat"
	TypeDog     PetType = "dog"
	TypeHamster PetType = "hamster"
	TypeLizard  PetType = "lizard"
	TypeSnake   PetType = "snake"
)

var allTypes = []PetType{TypeBird, TypeCat, TypeDog, TypeHamster, TypeLizard, TypeSnake}

// Types devuelve la enumeración completa, ordenada.
func Types() []PetType {
	out := make([]PetType, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseType acepta mayúsculas/espacios; false si no es un tipo conocido.
func ParseType(s string) (PetType, bool) {
	t := PetType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Pet representa una mascota. OwnerID no cambia después de crearla.
type Pet struct {
	ID        string
	OwnerID   string
	Name      string
	Type      PetType
	BirthDate time.Time // solo fecha, medianoche UTC
}

// Draft: ID opcional (reintentos idempotentes). El tipo llega como texto y se valida en el servicio.
type Draft struct {
	ID        string
	Name      string
	Type      string
	BirthDate time.Time
}

func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
