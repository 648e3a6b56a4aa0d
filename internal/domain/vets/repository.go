package vets

import (
	"context"
	"iter"
)

// Repository: la fila vet es la primaria; vet_by_specialty guarda una copia
// completa del vet por cada especialidad.
type Repository interface {
	Save(ctx context.Context, v Vet) error
	SaveBySpecialty(ctx context.Context, specialty string, v Vet) error
	FindByID(ctx context.Context, id string) (Vet, bool, error)
	FindAll(ctx context.Context) iter.Seq2[Vet, error]
	FindAllBySpecialty(ctx context.Context, specialty string) iter.Seq2[Vet, error]
	Delete(ctx context.Context, id string) error
	DeleteBySpecialty(ctx context.Context, specialty, vetID string) error
}
