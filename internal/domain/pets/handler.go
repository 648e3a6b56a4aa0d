package pets

import (
	"net/http"
	"strings"
	"time"

	"pet-clinic-rowstore/internal/domain/visits"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Mascotas de un dueño
	r.Post("/owners/{ownerID}/pets", createPetHandler(svc))
	r.Get("/owners/{ownerID}/pets", listPetsHandler(svc))

	r.Get("/pets/{petID}", getPetHandler(svc))
	r.Put("/pets/{petID}", updatePetHandler(svc))
	r.Delete("/pets/{petID}", deletePetHandler(svc))

	r.Get("/petTypes", listPetTypesHandler())
}

// petRequest es el cuerpo para crear o actualizar una mascota.
type petRequest struct {
	ID        string `json:"id,omitempty"` // solo en creación; opcional
	Name      string `json:"name"`
	PetType   string `json:"pet_type" enums:"bird,cat,dog,hamster,lizard,snake"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

// PetResponse representa una mascota devuelta por la API.
type PetResponse struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"owner_id"`
	Name      string  `json:"name"`
	PetType   PetType `json:"pet_type"`
	BirthDate string  `json:"birth_date"`
}

// petWithVisitsResponse es la vista de detalle: mascota + visitas.
type petWithVisitsResponse struct {
	PetResponse
	Visits []visits.VisitResponse `json:"visits"`
}

func (req petRequest) draft() (Draft, error) {
	var bd time.Time
	if strings.TrimSpace(req.BirthDate) != "" {
		t, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			return Draft{}, apperrors.NewValidationError("birth_date", "must be YYYY-MM-DD")
		}
		bd = t
	}
	return Draft{
		ID:        req.ID,
		Name:      req.Name,
		Type:      req.PetType,
		BirthDate: bd,
	}, nil
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota para el dueño indicado. Si el dueño no existe responde 404 sin escribir nada. Escribe la fila pet y después la copia en pet_by_owner; si la segunda falla responde 503 con el id, y reintentar con ese id completa la operación.
// @Tags pets
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse "owner not found"
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /owners/{ownerID}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		d, err := req.draft()
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		p, err := svc.Create(r.Context(), chi.URLParam(r, "ownerID"), d)
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas de un dueño
// @Tags pets
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {array} PetResponse
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /owners/{ownerID}/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota con visitas
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petWithVisitsResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse "mapping"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetWithVisits(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, petWithVisitsResponse{
			PetResponse: ToResponse(v.Pet),
			Visits:      visits.ToResponses(v.Visits),
		})
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza nombre, tipo y fecha de nacimiento. El dueño no cambia.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		d, err := req.draft()
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), d)
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la fila pet y después la copia del dueño. Las visitas no se borran.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listPetTypesHandler godoc
// @Summary Tipos de mascota
// @Tags pets
// @Produce json
// @Success 200 {array} string
// @Router /petTypes [get]
func listPetTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, Types())
	}
}

func ToResponse(p Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		PetType:   p.Type,
		BirthDate: p.BirthDate.Format(time.DateOnly),
	}
}

func ToResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}
