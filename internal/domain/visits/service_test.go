package visits

import (
	"context"
	"errors"
	"iter"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-clinic-rowstore/internal/platform/apperrors"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu     sync.Mutex
	byID   map[string]Visit
	byPet  map[string]map[string]Visit
	failBy error
	writes int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Visit{}, byPet: map[string]map[string]Visit{}}
}

func (r *testRepo) Save(ctx context.Context, v Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[v.ID] = v
	r.writes++
	return nil
}

func (r *testRepo) SaveByPet(ctx context.Context, v Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failBy != nil {
		return r.failBy
	}
	if r.byPet[v.PetID] == nil {
		r.byPet[v.PetID] = map[string]Visit{}
	}
	r.byPet[v.PetID][v.ID] = v
	r.writes++
	return nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (Visit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	return v, ok, nil
}

func (r *testRepo) FindAllByPet(ctx context.Context, petID string) iter.Seq2[Visit, error] {
	r.mu.Lock()
	out := make([]Visit, 0)
	for _, v := range r.byPet[petID] {
		out = append(out, v)
	}
	r.mu.Unlock()
	return func(yield func(Visit, error) bool) {
		for _, v := range out {
			if !yield(v, nil) {
				return
			}
		}
	}
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	r.writes++
	return nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID, visitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byPet[petID], visitID)
	r.writes++
	return nil
}

type knownPets map[string]bool

func (k knownPets) Exists(ctx context.Context, petID string) (bool, error) {
	return k[petID], nil
}

func newTestService(repo *testRepo, now time.Time) *Service {
	s := NewService(repo, knownPets{"p1": true, "p2": true})
	s.now = func() time.Time { return now }
	return s
}

func TestCreate_DefaultsDateToToday(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2024, 3, 5, 17, 45, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	v, err := svc.Create(context.Background(), "p1", Draft{Description: "checkup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !v.Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, v.Date)
	}
	if _, ok := repo.byPet["p1"][v.ID]; !ok {
		t.Fatal("expected visit_by_pet copy")
	}
}

func TestCreate_KeepsGivenDate(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	d := time.Date(2013, 1, 4, 9, 30, 0, 0, time.UTC)

	v, err := svc.Create(context.Background(), "p1", Draft{Date: d, Description: "spayed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !v.Date.Equal(DateOnly(d)) {
		t.Fatalf("unexpected date %v", v.Date)
	}
}

func TestCreate_UnknownPetWritesNothing(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), "ghost", Draft{Description: "x"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("expected zero writes, got %d", repo.writes)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(newTestRepo(), time.Now())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "p1", Draft{}); !apperrors.IsInvalidInput(err) {
		t.Fatalf("empty description: %v", err)
	}
	if _, err := svc.Create(ctx, "p1", Draft{Description: strings.Repeat("a", 256)}); !apperrors.IsInvalidInput(err) {
		t.Fatalf("long description: %v", err)
	}
	if _, err := svc.Create(ctx, "p1", Draft{ID: "x", Description: "ok"}); !apperrors.IsInvalidInput(err) {
		t.Fatalf("bad id: %v", err)
	}
	if _, err := svc.Create(ctx, " ", Draft{Description: "ok"}); !apperrors.IsInvalidInput(err) {
		t.Fatalf("empty pet id: %v", err)
	}
}

func TestCreate_CopyFailureIsPartial(t *testing.T) {
	repo := newTestRepo()
	repo.failBy = errors.New("write timeout")
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), "p1", Draft{Description: "x"})
	var pw *apperrors.PartialWriteError
	if !errors.As(err, &pw) {
		t.Fatalf("expected partial write, got %v", err)
	}
	if pw.Entity != "visit" || len(pw.Applied) != 1 {
		t.Fatalf("unexpected partial write %+v", pw)
	}
}

func TestListAndDelete(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()

	v, err := svc.Create(ctx, "p1", Draft{Description: "neutered"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := svc.ListByPet(ctx, "p1")
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %+v", err, list)
	}

	if err := svc.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, v.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not_found, got %v", err)
	}
	list, _ = svc.ListByPet(ctx, "p1")
	if len(list) != 0 {
		t.Fatalf("expected copy removed, got %d", len(list))
	}
	if err := svc.Delete(ctx, v.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestCreate_ReusedIDCannotMoveToAnotherPet(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	ctx := context.Background()
	id := "0d6c5c3e-3f0a-4b8e-9a55-1f2e3d4c5b6a"

	if _, err := svc.Create(ctx, "p1", Draft{ID: id, Description: "rabies shot"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	writes := repo.writes

	_, err := svc.Create(ctx, "p2", Draft{ID: id, Description: "rabies shot"})
	if !apperrors.IsInvalidInput(err) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if repo.writes != writes {
		t.Fatalf("expected no writes, got %d", repo.writes-writes)
	}

	v, err := svc.Get(ctx, id)
	if err != nil || v.PetID != "p1" {
		t.Fatalf("visit must stay on p1: %+v %v", v, err)
	}
	if list, _ := svc.ListByPet(ctx, "p2"); len(list) != 0 {
		t.Fatalf("p2 must not list the visit, got %d", len(list))
	}

	// mismo id y misma mascota: reintento válido
	if _, err := svc.Create(ctx, "p1", Draft{ID: id, Description: "rabies shot"}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if list, _ := svc.ListByPet(ctx, "p1"); len(list) != 1 {
		t.Fatalf("expected one visit on p1, got %d", len(list))
	}
}
