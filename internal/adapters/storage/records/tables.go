// Package records traduce entre objetos de dominio y filas del store
// (mappers puros) y expone un DAO por entidad sobre la sesión compartida.
//
// Layout de tablas:
//
//	owner            partición owner_id
//	pet              partición pet_id
//	pet_by_owner     partición owner_id, clustering pet_id
//	visit            partición visit_id
//	visit_by_pet     partición pet_id, clustering visit_id
//	vet              partición vet_id (especialidades embebidas)
//	vet_by_specialty partición especialidad, clustering vet_id
package records

import (
	"time"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

const (
	TableOwner          = "owner"
	TablePet            = "pet"
	TablePetByOwner     = "pet_by_owner"
	TableVisit          = "visit"
	TableVisitByPet     = "visit_by_pet"
	TableVet            = "vet"
	TableVetBySpecialty = "vet_by_specialty"
)

const dateLayout = time.DateOnly

func required(row rowstore.Row, col string) (string, error) {
	v, ok := row.String(col)
	if !ok {
		return "", apperrors.NewMappingError(row.Key.Table, col, "missing")
	}
	if v == "" {
		return "", apperrors.NewMappingError(row.Key.Table, col, "empty")
	}
	return v, nil
}

func optional(row rowstore.Row, col string) string {
	v, _ := row.String(col)
	return v
}

func date(row rowstore.Row, col string) (time.Time, error) {
	s, err := required(row, col)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewMappingError(row.Key.Table, col, "bad date "+s)
	}
	return t, nil
}
