package records

import (
	"context"
	"iter"

	"pet-clinic-rowstore/internal/domain/owners"
	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/domain/vets"
	"pet-clinic-rowstore/internal/domain/visits"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

// Cada método de DAO hace exactamente una llamada a la sesión.

type OwnerDAO struct {
	s rowstore.Session
}

func NewOwnerDAO(s rowstore.Session) *OwnerDAO { return &OwnerDAO{s: s} }

func (d *OwnerDAO) Save(ctx context.Context, o owners.Owner) error {
	return d.s.Put(ctx, ownerToRow(o))
}

func (d *OwnerDAO) FindByID(ctx context.Context, id string) (owners.Owner, bool, error) {
	row, ok, err := d.s.Get(ctx, rowstore.Key{Table: TableOwner, Partition: id})
	if err != nil || !ok {
		return owners.Owner{}, false, err
	}
	o, err := ownerFromRow(row)
	if err != nil {
		return owners.Owner{}, false, err
	}
	return o, true, nil
}

func (d *OwnerDAO) Exists(ctx context.Context, id string) (bool, error) {
	_, ok, err := d.s.Get(ctx, rowstore.Key{Table: TableOwner, Partition: id})
	return ok, err
}

func (d *OwnerDAO) Delete(ctx context.Context, id string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TableOwner, Partition: id})
}

type PetDAO struct {
	s rowstore.Session
}

func NewPetDAO(s rowstore.Session) *PetDAO { return &PetDAO{s: s} }

func (d *PetDAO) Save(ctx context.Context, p pets.Pet) error {
	return d.s.Put(ctx, petToRow(p))
}

func (d *PetDAO) SaveByOwner(ctx context.Context, p pets.Pet) error {
	return d.s.Put(ctx, petByOwnerToRow(p))
}

func (d *PetDAO) FindByID(ctx context.Context, id string) (pets.Pet, bool, error) {
	row, ok, err := d.s.Get(ctx, rowstore.Key{Table: TablePet, Partition: id})
	if err != nil || !ok {
		return pets.Pet{}, false, err
	}
	p, err := petFromRow(row)
	if err != nil {
		return pets.Pet{}, false, err
	}
	return p, true, nil
}

// FindAllByOwner lee la partición pet_by_owner; una sola consulta.
func (d *PetDAO) FindAllByOwner(ctx context.Context, ownerID string) iter.Seq2[pets.Pet, error] {
	return rowstore.Once(rowstore.Map(d.s.Scan(ctx, TablePetByOwner, ownerID), petFromRow))
}

func (d *PetDAO) Delete(ctx context.Context, id string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TablePet, Partition: id})
}

func (d *PetDAO) DeleteByOwner(ctx context.Context, ownerID, petID string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TablePetByOwner, Partition: ownerID, Clustering: petID})
}

type VisitDAO struct {
	s rowstore.Session
}

func NewVisitDAO(s rowstore.Session) *VisitDAO { return &VisitDAO{s: s} }

func (d *VisitDAO) Save(ctx context.Context, v visits.Visit) error {
	return d.s.Put(ctx, visitToRow(v))
}

func (d *VisitDAO) SaveByPet(ctx context.Context, v visits.Visit) error {
	return d.s.Put(ctx, visitByPetToRow(v))
}

func (d *VisitDAO) FindByID(ctx context.Context, id string) (visits.Visit, bool, error) {
	row, ok, err := d.s.Get(ctx, rowstore.Key{Table: TableVisit, Partition: id})
	if err != nil || !ok {
		return visits.Visit{}, false, err
	}
	v, err := visitFromRow(row)
	if err != nil {
		return visits.Visit{}, false, err
	}
	return v, true, nil
}

func (d *VisitDAO) FindAllByPet(ctx context.Context, petID string) iter.Seq2[visits.Visit, error] {
	return rowstore.Once(rowstore.Map(d.s.Scan(ctx, TableVisitByPet, petID), visitFromRow))
}

func (d *VisitDAO) Delete(ctx context.Context, id string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TableVisit, Partition: id})
}

func (d *VisitDAO) DeleteByPet(ctx context.Context, petID, visitID string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TableVisitByPet, Partition: petID, Clustering: visitID})
}

type VetDAO struct {
	s rowstore.Session
}

func NewVetDAO(s rowstore.Session) *VetDAO { return &VetDAO{s: s} }

func (d *VetDAO) Save(ctx context.Context, v vets.Vet) error {
	return d.s.Put(ctx, vetToRow(v))
}

func (d *VetDAO) SaveBySpecialty(ctx context.Context, specialty string, v vets.Vet) error {
	return d.s.Put(ctx, vetBySpecialtyToRow(specialty, v))
}

func (d *VetDAO) FindByID(ctx context.Context, id string) (vets.Vet, bool, error) {
	row, ok, err := d.s.Get(ctx, rowstore.Key{Table: TableVet, Partition: id})
	if err != nil || !ok {
		return vets.Vet{}, false, err
	}
	v, err := vetFromRow(row)
	if err != nil {
		return vets.Vet{}, false, err
	}
	return v, true, nil
}

func (d *VetDAO) FindAll(ctx context.Context) iter.Seq2[vets.Vet, error] {
	return rowstore.Once(rowstore.Map(d.s.ScanTable(ctx, TableVet), vetFromRow))
}

func (d *VetDAO) FindAllBySpecialty(ctx context.Context, specialty string) iter.Seq2[vets.Vet, error] {
	return rowstore.Once(rowstore.Map(d.s.Scan(ctx, TableVetBySpecialty, specialty), vetFromRow))
}

func (d *VetDAO) Delete(ctx context.Context, id string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TableVet, Partition: id})
}

func (d *VetDAO) DeleteBySpecialty(ctx context.Context, specialty, vetID string) error {
	return d.s.Delete(ctx, rowstore.Key{Table: TableVetBySpecialty, Partition: specialty, Clustering: vetID})
}

var (
	_ owners.Repository = (*OwnerDAO)(nil)
	_ owners.PetLister  = (*PetDAO)(nil)
	_ pets.Repository   = (*PetDAO)(nil)
	_ pets.VisitLister  = (*VisitDAO)(nil)
	_ visits.Repository = (*VisitDAO)(nil)
	_ vets.Repository   = (*VetDAO)(nil)
)
