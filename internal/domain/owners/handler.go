package owners

import (
	"net/http"

	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/owners", createOwnerHandler(svc))
	r.Get("/owners/{ownerID}", getOwnerHandler(svc))
	r.Put("/owners/{ownerID}", updateOwnerHandler(svc))
	r.Delete("/owners/{ownerID}", deleteOwnerHandler(svc))
}

// ownerRequest es el cuerpo para crear o actualizar un dueño.
type ownerRequest struct {
	ID        string `json:"id,omitempty"` // solo en creación; opcional
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

func (req ownerRequest) draft() Draft {
	return Draft{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
	}
}

// OwnerResponse representa un dueño devuelto por la API.
type OwnerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

// ownerWithPetsResponse es la vista agregada dueño + mascotas.
type ownerWithPetsResponse struct {
	OwnerResponse
	Pets []pets.PetResponse `json:"pets"`
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} OwnerResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		o, err := svc.Create(r.Context(), req.draft())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño con sus mascotas
// @Description Lee la fila del dueño y la partición pet_by_owner en paralelo. El orden de las mascotas no está garantizado.
// @Tags owners
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {object} ownerWithPetsResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse "mapping"
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "ownerID")
		v, ok, err := svc.FindWithPets(r.Context(), id)
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		if !ok {
			httpjson.WriteError(w, apperrors.NewNotFoundError("owner", id))
			return
		}

		httpjson.Write(w, http.StatusOK, ownerWithPetsResponse{
			OwnerResponse: toOwnerResponse(v.Owner),
			Pets:          pets.ToResponses(v.Pets),
		})
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} OwnerResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), req.draft())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toOwnerResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar dueño
// @Description Borra solo la fila del dueño; sus mascotas no se tocan.
// @Tags owners
// @Param ownerID path string true "ID del dueño"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toOwnerResponse(o Owner) OwnerResponse {
	return OwnerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
}
