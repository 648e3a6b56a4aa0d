package vets

import (
	"context"
	"slices"
	"strings"

	"pet-clinic-rowstore/internal/domain/writeplan"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func normalize(in Draft) (Vet, error) {
	v := Vet{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Specialties: NormalizeSpecialties(in.Specialties),
	}
	if v.FirstName == "" {
		return Vet{}, apperrors.NewValidationError("first_name", "required")
	}
	if v.LastName == "" {
		return Vet{}, apperrors.NewValidationError("last_name", "required")
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, in Draft) (Vet, error) {
	v, err := normalize(in)
	if err != nil {
		return Vet{}, err
	}

	// Un id repetido reescribe el vet: las copias de especialidades que ya no
	// tiene se borran igual que en Update.
	var dropped []string
	v.ID = strings.TrimSpace(in.ID)
	if v.ID == "" {
		v.ID = uuid.NewString()
	} else {
		if _, err := uuid.Parse(v.ID); err != nil {
			return Vet{}, apperrors.NewValidationError("id", "must be a uuid")
		}
		current, found, err := s.repo.FindByID(ctx, v.ID)
		if err != nil {
			return Vet{}, apperrors.Classify("get vet", err)
		}
		if found {
			dropped = droppedSpecialties(current.Specialties, v.Specialties)
		}
	}

	if err := s.savePlan(v, dropped).Run(ctx); err != nil {
		return Vet{}, err
	}
	return v, nil
}

// Update reescribe la fila vet y todas sus copias por especialidad, y borra las
// copias de especialidades que ya no tiene.
func (s *Service) Update(ctx context.Context, id string, in Draft) (Vet, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Vet{}, err
	}
	v, err := normalize(in)
	if err != nil {
		return Vet{}, err
	}
	v.ID = current.ID

	if err := s.savePlan(v, droppedSpecialties(current.Specialties, v.Specialties)).Run(ctx); err != nil {
		return Vet{}, err
	}
	return v, nil
}

func droppedSpecialties(old, next []string) []string {
	out := make([]string, 0)
	for _, sp := range old {
		if !slices.Contains(next, sp) {
			out = append(out, sp)
		}
	}
	return out
}

func (s *Service) savePlan(v Vet, dropped []string) *writeplan.Plan {
	p := writeplan.New("vet", v.ID).
		Add("vet/"+v.ID, func(ctx context.Context) error { return s.repo.Save(ctx, v) })
	for _, sp := range v.Specialties {
		p.Add("vet_by_specialty/"+sp+"/"+v.ID, func(ctx context.Context) error {
			return s.repo.SaveBySpecialty(ctx, sp, v)
		})
	}
	for _, sp := range dropped {
		p.Add("vet_by_specialty/"+sp+"/"+v.ID, func(ctx context.Context) error {
			return s.repo.DeleteBySpecialty(ctx, sp, v.ID)
		})
	}
	return p
}

func (s *Service) Get(ctx context.Context, id string) (Vet, error) {
	v, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Vet{}, apperrors.Classify("get vet", err)
	}
	if !ok {
		return Vet{}, apperrors.NewNotFoundError("vet", id)
	}
	return v, nil
}

// List devuelve todos los vets con sus especialidades ya embebidas.
func (s *Service) List(ctx context.Context) ([]Vet, error) {
	out, err := rowstore.Collect(s.repo.FindAll(ctx))
	if err != nil {
		return nil, apperrors.Classify("list vets", err)
	}
	return out, nil
}

func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]Vet, error) {
	sp := NormalizeSpecialties([]string{specialty})
	if len(sp) == 0 {
		return nil, apperrors.NewValidationError("specialty", "required")
	}
	out, err := rowstore.Collect(s.repo.FindAllBySpecialty(ctx, sp[0]))
	if err != nil {
		return nil, apperrors.Classify("list vets by specialty", err)
	}
	return out, nil
}

// Delete borra la fila vet y después cada copia por especialidad.
func (s *Service) Delete(ctx context.Context, id string) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p := writeplan.New("vet", v.ID).
		Add("vet/"+v.ID, func(ctx context.Context) error { return s.repo.Delete(ctx, v.ID) })
	for _, sp := range v.Specialties {
		p.Add("vet_by_specialty/"+sp+"/"+v.ID, func(ctx context.Context) error {
			return s.repo.DeleteBySpecialty(ctx, sp, v.ID)
		})
	}
	return p.Run(ctx)
}
