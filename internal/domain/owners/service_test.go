package owners_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-clinic-rowstore/internal/adapters/storage/memory"
	"pet-clinic-rowstore/internal/adapters/storage/records"
	"pet-clinic-rowstore/internal/domain/owners"
	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/platform/apperrors"
)

func newServices() (*memory.Session, *owners.Service, *pets.Service) {
	s := memory.NewSession()
	petDAO := records.NewPetDAO(s)
	ownersSvc := owners.NewService(records.NewOwnerDAO(s), petDAO)
	petsSvc := pets.NewService(petDAO, ownersSvc, records.NewVisitDAO(s))
	return s, ownersSvc, petsSvc
}

func TestCreate_Normalizes(t *testing.T) {
	_, svc, _ := newServices()

	o, err := svc.Create(context.Background(), owners.Draft{
		FirstName: "  Eduardo ",
		LastName:  "Rodriquez",
		City:      "McFarland",
		Telephone: "6085558763",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == "" || o.FirstName != "Eduardo" {
		t.Fatalf("unexpected owner %+v", o)
	}
}

func TestCreate_Validation(t *testing.T) {
	s, svc, _ := newServices()

	cases := map[string]owners.Draft{
		"no first name":  {LastName: "Davis"},
		"no last name":   {FirstName: "Betty"},
		"phone letters":  {FirstName: "Betty", LastName: "Davis", Telephone: "608-555"},
		"phone too long": {FirstName: "Betty", LastName: "Davis", Telephone: "60855517490"},
		"bad id":         {ID: "42", FirstName: "Betty", LastName: "Davis"},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), d); !apperrors.IsInvalidInput(err) {
				t.Fatalf("expected invalid_input, got %v", err)
			}
		})
	}
	if s.Writes() != 0 {
		t.Fatalf("expected zero writes, got %d", s.Writes())
	}
}

func TestCreate_SameIDIsIdempotent(t *testing.T) {
	s, svc, _ := newServices()
	d := owners.Draft{ID: "6b0f0e8a-7c1d-4d7e-9b5e-2d3c4b5a6f70", FirstName: "Jean", LastName: "Coleman"}

	for range 2 {
		if _, err := svc.Create(context.Background(), d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if n := s.Len(records.TableOwner); n != 1 {
		t.Fatalf("expected 1 owner row, got %d", n)
	}
}

func TestFindWithPets(t *testing.T) {
	_, svc, petsSvc := newServices()
	ctx := context.Background()

	o, err := svc.Create(ctx, owners.Draft{FirstName: "Jeff", LastName: "Black"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	for _, name := range []string{"Lucky", "Sly"} {
		_, err := petsSvc.Create(ctx, o.ID, pets.Draft{Name: name, Type: "bird", BirthDate: time.Date(2011, 8, 6, 0, 0, 0, 0, time.UTC)})
		if err != nil {
			t.Fatalf("create pet: %v", err)
		}
	}

	v, ok, err := svc.FindWithPets(ctx, o.ID)
	if err != nil || !ok {
		t.Fatalf("find: ok=%v err=%v", ok, err)
	}
	if v.Owner != o || len(v.Pets) != 2 {
		t.Fatalf("unexpected view %+v", v)
	}

	_, ok, err = svc.FindWithPets(ctx, "missing")
	if err != nil || ok {
		t.Fatalf("expected absent owner, ok=%v err=%v", ok, err)
	}
}

func TestFindWithPets_PartitionFailure(t *testing.T) {
	s, svc, _ := newServices()
	ctx := context.Background()
	o, _ := svc.Create(ctx, owners.Draft{FirstName: "Maria", LastName: "Escobito"})

	s.FailOn(memory.OpScan, records.TablePetByOwner, errors.New("read timeout"))
	_, _, err := svc.FindWithPets(ctx, o.ID)
	if apperrors.KindOf(err) != apperrors.KindStorage {
		t.Fatalf("expected storage kind, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	s, svc, petsSvc := newServices()
	ctx := context.Background()
	o, _ := svc.Create(ctx, owners.Draft{FirstName: "Harold", LastName: "Davis"})
	if _, err := petsSvc.Create(ctx, o.ID, pets.Draft{Name: "Iggy", Type: "lizard", BirthDate: time.Date(2010, 11, 30, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	up, err := svc.Update(ctx, o.ID, owners.Draft{FirstName: "Harold", LastName: "Davis", City: "Sun Prairie"})
	if err != nil || up.City != "Sun Prairie" || up.ID != o.ID {
		t.Fatalf("update: %+v %v", up, err)
	}
	if _, err := svc.Update(ctx, "missing", owners.Draft{FirstName: "a", LastName: "b"}); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not_found, got %v", err)
	}

	if err := svc.Delete(ctx, o.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, o.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not_found after delete, got %v", err)
	}
	// Sin cascada: la mascota y su copia siguen.
	if s.Len(records.TablePet) != 1 || s.Len(records.TablePetByOwner) != 1 {
		t.Fatalf("pets must not cascade")
	}
}

func TestUpdate_ConcurrentLastWriteWins(t *testing.T) {
	s, svc, _ := newServices()
	ctx := context.Background()
	o, err := svc.Create(ctx, owners.Draft{FirstName: "Carlos", LastName: "Estaban", Telephone: "6085555487"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	phones := []string{"6085551111", "6085552222"}
	var wg sync.WaitGroup
	for _, ph := range phones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Update(ctx, o.ID, owners.Draft{FirstName: "Carlos", LastName: "Estaban", Telephone: ph}); err != nil {
				t.Errorf("update %s: %v", ph, err)
			}
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Telephone != phones[0] && got.Telephone != phones[1] {
		t.Fatalf("unexpected telephone %q", got.Telephone)
	}
	if n := s.Len(records.TableOwner); n != 1 {
		t.Fatalf("expected 1 owner row, got %d", n)
	}
}
