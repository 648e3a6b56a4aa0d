package pets

import (
	"context"
	"strings"
	"time"

	"pet-clinic-rowstore/internal/domain/visits"
	"pet-clinic-rowstore/internal/domain/writeplan"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxName = 30

type Service struct {
	repo   Repository
	owners OwnerLookup
	visits VisitLister
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerLookup, visits VisitLister) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		visits: visits,
		now:    time.Now,
	}
}

// View es la mascota con sus visitas, armada en lectura.
type View struct {
	Pet    Pet
	Visits []visits.Visit
}

func (s *Service) validate(in Draft) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, apperrors.NewValidationError("name", "required")
	}
	if len(name) > maxName {
		return Pet{}, apperrors.NewValidationError("name", "too long")
	}
	t, ok := ParseType(in.Type)
	if !ok {
		return Pet{}, apperrors.NewValidationError("pet_type", "unknown pet type "+strings.TrimSpace(in.Type))
	}
	if in.BirthDate.IsZero() {
		return Pet{}, apperrors.NewValidationError("birth_date", "required")
	}
	bd := DateOnly(in.BirthDate)
	if bd.After(DateOnly(s.now())) {
		return Pet{}, apperrors.NewValidationError("birth_date", "in the future")
	}
	return Pet{Name: name, Type: t, BirthDate: bd}, nil
}

// Create verifica el dueño antes de escribir nada. Después escribe la fila pet
// y luego la copia en pet_by_owner. Si la segunda falla, la mascota ya existe
// por id pero todavía no aparece en el dueño; reintentar con el mismo ID la completa.
func (s *Service) Create(ctx context.Context, ownerID string, in Draft) (Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Pet{}, apperrors.NewValidationError("owner_id", "required")
	}
	p, err := s.validate(in)
	if err != nil {
		return Pet{}, err
	}

	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return Pet{}, apperrors.Classify("check owner", err)
	}
	if !ok {
		return Pet{}, apperrors.NewNotFoundError("owner", ownerID)
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	} else {
		if _, err := uuid.Parse(id); err != nil {
			return Pet{}, apperrors.NewValidationError("id", "must be a uuid")
		}
		// Reintento: el id no puede pasar a otro dueño.
		current, found, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return Pet{}, apperrors.Classify("get pet", err)
		}
		if found && current.OwnerID != ownerID {
			return Pet{}, apperrors.NewValidationError("id", "belongs to another owner")
		}
	}

	p.ID = id
	p.OwnerID = ownerID

	if err := s.savePlan(p).Run(ctx); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reescribe las dos copias. El dueño no cambia.
func (s *Service) Update(ctx context.Context, petID string, in Draft) (Pet, error) {
	current, err := s.Get(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	p, err := s.validate(in)
	if err != nil {
		return Pet{}, err
	}
	p.ID = current.ID
	p.OwnerID = current.OwnerID

	if err := s.savePlan(p).Run(ctx); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) savePlan(p Pet) *writeplan.Plan {
	return writeplan.New("pet", p.ID).
		Add("pet/"+p.ID, func(ctx context.Context) error { return s.repo.Save(ctx, p) }).
		Add("pet_by_owner/"+p.OwnerID+"/"+p.ID, func(ctx context.Context) error { return s.repo.SaveByOwner(ctx, p) })
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	p, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Pet{}, apperrors.Classify("get pet", err)
	}
	if !ok {
		return Pet{}, apperrors.NewNotFoundError("pet", id)
	}
	return p, nil
}

// GetWithVisits lee la mascota y la partición de visitas en paralelo.
func (s *Service) GetWithVisits(ctx context.Context, id string) (View, error) {
	var (
		pet   Pet
		found bool
		vs    []visits.Visit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pet, found, err = s.repo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		vs, err = rowstore.Collect(s.visits.FindAllByPet(gctx, id))
		return err
	})
	if err := g.Wait(); err != nil {
		return View{}, apperrors.Classify("get pet with visits", err)
	}
	if !found {
		return View{}, apperrors.NewNotFoundError("pet", id)
	}
	return View{Pet: pet, Visits: vs}, nil
}

// ListByOwner lee la partición pet_by_owner. Dueño inexistente = lista vacía.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out, err := rowstore.Collect(s.repo.FindAllByOwner(ctx, ownerID))
	if err != nil {
		return nil, apperrors.Classify("list pets", err)
	}
	return out, nil
}

// Delete borra la fila pet y después la copia del dueño. Las visitas quedan.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return writeplan.New("pet", p.ID).
		Add("pet/"+p.ID, func(ctx context.Context) error { return s.repo.Delete(ctx, p.ID) }).
		Add("pet_by_owner/"+p.OwnerID+"/"+p.ID, func(ctx context.Context) error { return s.repo.DeleteByOwner(ctx, p.OwnerID, p.ID) }).
		Run(ctx)
}
