package visits

import (
	"context"
	"iter"
)

// Repository: cada método es una sola llamada al store.
// Save/Delete tocan la fila primaria; SaveByPet/DeleteByPet la copia por mascota.
type Repository interface {
	Save(ctx context.Context, v Visit) error
	SaveByPet(ctx context.Context, v Visit) error
	FindByID(ctx context.Context, id string) (Visit, bool, error)
	FindAllByPet(ctx context.Context, petID string) iter.Seq2[Visit, error]
	Delete(ctx context.Context, id string) error
	DeleteByPet(ctx context.Context, petID, visitID string) error
}

// PetLookup evita importar pets (pets ya importa visits).
type PetLookup interface {
	Exists(ctx context.Context, petID string) (bool, error)
}
