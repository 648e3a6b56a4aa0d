package pets

import (
	"context"

	"pet-clinic-rowstore/internal/platform/apperrors"
)

// Exists responde si la mascota existe (una lectura de la fila primaria).
// Se usa desde visits vía visits.PetLookup para evitar ciclos de imports.
func (s *Service) Exists(ctx context.Context, petID string) (bool, error) {
	_, ok, err := s.repo.FindByID(ctx, petID)
	if err != nil {
		return false, apperrors.Classify("check pet", err)
	}
	return ok, nil
}
