package owners

import (
	"context"
	"iter"

	"pet-clinic-rowstore/internal/domain/pets"
)

type Repository interface {
	Save(ctx context.Context, o Owner) error
	FindByID(ctx context.Context, id string) (Owner, bool, error)
	Delete(ctx context.Context, id string) error
}

// PetLister es la partición pet_by_owner.
type PetLister interface {
	FindAllByOwner(ctx context.Context, ownerID string) iter.Seq2[pets.Pet, error]
}
