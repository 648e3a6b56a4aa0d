package owners

import (
	"context"
	"strings"

	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo Repository
	pets PetLister
}

func NewService(repo Repository, pets PetLister) *Service {
	return &Service{
		repo: repo,
		pets: pets,
	}
}

// View es el dueño con sus mascotas. Se arma en lectura; el orden de Pets no está garantizado.
type View struct {
	Owner Owner
	Pets  []pets.Pet
}

func normalize(in Draft) (Owner, error) {
	o := Owner{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Telephone: strings.TrimSpace(in.Telephone),
	}
	if o.FirstName == "" {
		return Owner{}, apperrors.NewValidationError("first_name", "required")
	}
	if o.LastName == "" {
		return Owner{}, apperrors.NewValidationError("last_name", "required")
	}
	for _, c := range o.Telephone {
		if c < '0' || c > '9' {
			return Owner{}, apperrors.NewValidationError("telephone", "digits only")
		}
	}
	if len(o.Telephone) > 10 {
		return Owner{}, apperrors.NewValidationError("telephone", "at most 10 digits")
	}
	return o, nil
}

// Create es una sola escritura (fila owner).
func (s *Service) Create(ctx context.Context, in Draft) (Owner, error) {
	o, err := normalize(in)
	if err != nil {
		return Owner{}, err
	}

	o.ID = strings.TrimSpace(in.ID)
	if o.ID == "" {
		o.ID = uuid.NewString()
	} else if _, err := uuid.Parse(o.ID); err != nil {
		return Owner{}, apperrors.NewValidationError("id", "must be a uuid")
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return Owner{}, apperrors.Classify("save owner", err)
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id string, in Draft) (Owner, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Owner{}, err
	}
	o, err := normalize(in)
	if err != nil {
		return Owner{}, err
	}
	o.ID = id

	if err := s.repo.Save(ctx, o); err != nil {
		return Owner{}, apperrors.Classify("save owner", err)
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (Owner, error) {
	o, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Owner{}, apperrors.Classify("get owner", err)
	}
	if !ok {
		return Owner{}, apperrors.NewNotFoundError("owner", id)
	}
	return o, nil
}

// Exists lo usa pets (vía pets.OwnerLookup) antes de escribir una mascota.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, apperrors.Classify("check owner", err)
	}
	return ok, nil
}

// FindWithPets compone una lectura del dueño y un scan de pet_by_owner, en paralelo.
// false si el dueño no existe.
func (s *Service) FindWithPets(ctx context.Context, id string) (View, bool, error) {
	var (
		owner Owner
		found bool
		ps    []pets.Pet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owner, found, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		ps, err = rowstore.Collect(s.pets.FindAllByOwner(gctx, id))
		return err
	})
	if err := g.Wait(); err != nil {
		return View{}, false, apperrors.Classify("find owner with pets", err)
	}
	if !found {
		return View{}, false, nil
	}
	return View{Owner: owner, Pets: ps}, true, nil
}

// Delete borra solo la fila owner. Las mascotas y sus copias no se tocan.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Classify("delete owner", err)
	}
	return nil
}
