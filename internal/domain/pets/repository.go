package pets

import (
	"context"
	"iter"

	"pet-clinic-rowstore/internal/domain/visits"
)

// Repository: cada método es una sola llamada al store.
// Save/Delete tocan la fila pet; SaveByOwner/DeleteByOwner la copia en pet_by_owner.
type Repository interface {
	Save(ctx context.Context, p Pet) error
	SaveByOwner(ctx context.Context, p Pet) error
	FindByID(ctx context.Context, id string) (Pet, bool, error)
	FindAllByOwner(ctx context.Context, ownerID string) iter.Seq2[Pet, error]
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID, petID string) error
}

// OwnerLookup evita importar owners (owners ya importa pets).
type OwnerLookup interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}

type VisitLister interface {
	FindAllByPet(ctx context.Context, petID string) iter.Seq2[visits.Visit, error]
}
