package records

import (
	"pet-clinic-rowstore/internal/domain/owners"
	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/domain/vets"
	"pet-clinic-rowstore/internal/domain/visits"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

// Owner

func ownerToRow(o owners.Owner) rowstore.Row {
	return rowstore.NewRow(rowstore.Key{Table: TableOwner, Partition: o.ID}).
		Set("id", o.ID).
		Set("first_name", o.FirstName).
		Set("last_name", o.LastName).
		Set("address", o.Address).
		Set("city", o.City).
		Set("telephone", o.Telephone)
}

func ownerFromRow(row rowstore.Row) (owners.Owner, error) {
	id, err := required(row, "id")
	if err != nil {
		return owners.Owner{}, err
	}
	first, err := required(row, "first_name")
	if err != nil {
		return owners.Owner{}, err
	}
	last, err := required(row, "last_name")
	if err != nil {
		return owners.Owner{}, err
	}
	return owners.Owner{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Address:   optional(row, "address"),
		City:      optional(row, "city"),
		Telephone: optional(row, "telephone"),
	}, nil
}

// Pet: la fila pet y la copia pet_by_owner tienen las mismas columnas.

func petColumns(row rowstore.Row, p pets.Pet) rowstore.Row {
	return row.
		Set("id", p.ID).
		Set("owner_id", p.OwnerID).
		Set("name", p.Name).
		Set("pet_type", string(p.Type)).
		Set("birth_date", p.BirthDate.Format(dateLayout))
}

func petToRow(p pets.Pet) rowstore.Row {
	return petColumns(rowstore.NewRow(rowstore.Key{Table: TablePet, Partition: p.ID}), p)
}

func petByOwnerToRow(p pets.Pet) rowstore.Row {
	return petColumns(rowstore.NewRow(rowstore.Key{Table: TablePetByOwner, Partition: p.OwnerID, Clustering: p.ID}), p)
}

func petFromRow(row rowstore.Row) (pets.Pet, error) {
	id, err := required(row, "id")
	if err != nil {
		return pets.Pet{}, err
	}
	ownerID, err := required(row, "owner_id")
	if err != nil {
		return pets.Pet{}, err
	}
	name, err := required(row, "name")
	if err != nil {
		return pets.Pet{}, err
	}
	rawType, err := required(row, "pet_type")
	if err != nil {
		return pets.Pet{}, err
	}
	t, ok := pets.ParseType(rawType)
	if !ok || string(t) != rawType {
		return pets.Pet{}, apperrors.NewMappingError(row.Key.Table, "pet_type", "unknown pet type "+rawType)
	}
	bd, err := date(row, "birth_date")
	if err != nil {
		return pets.Pet{}, err
	}
	return pets.Pet{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Type:      t,
		BirthDate: bd,
	}, nil
}

// Visit

func visitColumns(row rowstore.Row, v visits.Visit) rowstore.Row {
	return row.
		Set("id", v.ID).
		Set("pet_id", v.PetID).
		Set("visit_date", v.Date.Format(dateLayout)).
		Set("description", v.Description)
}

func visitToRow(v visits.Visit) rowstore.Row {
	return visitColumns(rowstore.NewRow(rowstore.Key{Table: TableVisit, Partition: v.ID}), v)
}

func visitByPetToRow(v visits.Visit) rowstore.Row {
	return visitColumns(rowstore.NewRow(rowstore.Key{Table: TableVisitByPet, Partition: v.PetID, Clustering: v.ID}), v)
}

func visitFromRow(row rowstore.Row) (visits.Visit, error) {
	id, err := required(row, "id")
	if err != nil {
		return visits.Visit{}, err
	}
	petID, err := required(row, "pet_id")
	if err != nil {
		return visits.Visit{}, err
	}
	d, err := date(row, "visit_date")
	if err != nil {
		return visits.Visit{}, err
	}
	return visits.Visit{
		ID:          id,
		PetID:       petID,
		Date:        d,
		Description: optional(row, "description"),
	}, nil
}

// Vet

func vetColumns(row rowstore.Row, v vets.Vet) rowstore.Row {
	specs := v.Specialties
	if specs == nil {
		specs = []string{}
	}
	return row.
		Set("id", v.ID).
		Set("first_name", v.FirstName).
		Set("last_name", v.LastName).
		SetList("specialties", specs)
}

func vetToRow(v vets.Vet) rowstore.Row {
	return vetColumns(rowstore.NewRow(rowstore.Key{Table: TableVet, Partition: v.ID}), v)
}

func vetBySpecialtyToRow(specialty string, v vets.Vet) rowstore.Row {
	return vetColumns(rowstore.NewRow(rowstore.Key{Table: TableVetBySpecialty, Partition: specialty, Clustering: v.ID}), v)
}

func vetFromRow(row rowstore.Row) (vets.Vet, error) {
	id, err := required(row, "id")
	if err != nil {
		return vets.Vet{}, err
	}
	first, err := required(row, "first_name")
	if err != nil {
		return vets.Vet{}, err
	}
	last, err := required(row, "last_name")
	if err != nil {
		return vets.Vet{}, err
	}

	specs := []string{}
	if _, present := row.Columns["specialties"]; present && row.Columns["specialties"] != nil {
		l, ok := row.Strings("specialties")
		if !ok {
			return vets.Vet{}, apperrors.NewMappingError(row.Key.Table, "specialties", "not a list of text")
		}
		specs = l
	}
	return vets.Vet{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		Specialties: specs,
	}, nil
}
