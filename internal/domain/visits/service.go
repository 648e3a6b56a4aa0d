package visits

import (
	"context"
	"strings"
	"time"

	"pet-clinic-rowstore/internal/domain/writeplan"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/google/uuid"
)

const maxDescription = 255

type Service struct {
	repo Repository
	pets PetLookup
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

// Create verifica que la mascota exista y escribe la visita y su copia por mascota.
// Si la mascota no existe no se escribe nada.
func (s *Service) Create(ctx context.Context, petID string, in Draft) (Visit, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Visit{}, apperrors.NewValidationError("pet_id", "required")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return Visit{}, apperrors.NewValidationError("description", "required")
	}
	if len(desc) > maxDescription {
		return Visit{}, apperrors.NewValidationError("description", "too long")
	}

	ok, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return Visit{}, apperrors.Classify("check pet", err)
	}
	if !ok {
		return Visit{}, apperrors.NewNotFoundError("pet", petID)
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	} else {
		if _, err := uuid.Parse(id); err != nil {
			return Visit{}, apperrors.NewValidationError("id", "must be a uuid")
		}
		// Reintento: el id no puede pasar a otra mascota.
		current, found, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return Visit{}, apperrors.Classify("get visit", err)
		}
		if found && current.PetID != petID {
			return Visit{}, apperrors.NewValidationError("id", "belongs to another pet")
		}
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	v := Visit{
		ID:          id,
		PetID:       petID,
		Date:        DateOnly(date),
		Description: desc,
	}

	err = writeplan.New("visit", v.ID).
		Add("visit/"+v.ID, func(ctx context.Context) error { return s.repo.Save(ctx, v) }).
		Add("visit_by_pet/"+v.PetID+"/"+v.ID, func(ctx context.Context) error { return s.repo.SaveByPet(ctx, v) }).
		Run(ctx)
	if err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id string) (Visit, error) {
	v, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Visit{}, apperrors.Classify("get visit", err)
	}
	if !ok {
		return Visit{}, apperrors.NewNotFoundError("visit", id)
	}
	return v, nil
}

// ListByPet lee la partición visit_by_pet. El orden no está garantizado.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]Visit, error) {
	out, err := rowstore.Collect(s.repo.FindAllByPet(ctx, petID))
	if err != nil {
		return nil, apperrors.Classify("list visits", err)
	}
	return out, nil
}

// Delete borra la fila primaria y después la copia por mascota; no es atómico.
func (s *Service) Delete(ctx context.Context, id string) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return writeplan.New("visit", v.ID).
		Add("visit/"+v.ID, func(ctx context.Context) error { return s.repo.Delete(ctx, v.ID) }).
		Add("visit_by_pet/"+v.PetID+"/"+v.ID, func(ctx context.Context) error { return s.repo.DeleteByPet(ctx, v.PetID, v.ID) }).
		Run(ctx)
}
