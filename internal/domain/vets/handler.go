package vets

import (
	"net/http"

	"pet-clinic-rowstore/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vets", listVetsHandler(svc))
	r.Post("/vets", createVetHandler(svc))
	r.Get("/vets/{vetID}", getVetHandler(svc))
	r.Put("/vets/{vetID}", updateVetHandler(svc))
	r.Delete("/vets/{vetID}", deleteVetHandler(svc))

	r.Get("/specialties/{specialty}/vets", listVetsBySpecialtyHandler(svc))
}

// vetRequest es el cuerpo para crear o actualizar un veterinario.
type vetRequest struct {
	ID          string   `json:"id,omitempty"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Specialties []string `json:"specialties"`
}

func (req vetRequest) draft() Draft {
	return Draft{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Specialties: req.Specialties,
	}
}

// VetResponse representa un veterinario devuelto por la API.
type VetResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Specialties []string `json:"specialties"`
}

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Tags vets
// @Produce json
// @Success 200 {array} VetResponse
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponses(items))
	}
}

// listVetsBySpecialtyHandler godoc
// @Summary Veterinarios por especialidad
// @Tags vets
// @Produce json
// @Param specialty path string true "Especialidad"
// @Success 200 {array} VetResponse
// @Router /specialties/{specialty}/vets [get]
func listVetsBySpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBySpecialty(r.Context(), chi.URLParam(r, "specialty"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponses(items))
	}
}

// createVetHandler godoc
// @Summary Crear veterinario
// @Tags vets
// @Accept json
// @Produce json
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 201 {object} VetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /vets [post]
func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		v, err := svc.Create(r.Context(), req.draft())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(v))
	}
}

// getVetHandler godoc
// @Summary Obtener veterinario
// @Tags vets
// @Produce json
// @Param vetID path string true "ID del veterinario"
// @Success 200 {object} VetResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /vets/{vetID} [get]
func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(v))
	}
}

// updateVetHandler godoc
// @Summary Actualizar veterinario
// @Tags vets
// @Accept json
// @Produce json
// @Param vetID path string true "ID del veterinario"
// @Param payload body vetRequest true "Datos del veterinario"
// @Success 200 {object} VetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /vets/{vetID} [put]
func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		v, err := svc.Update(r.Context(), chi.URLParam(r, "vetID"), req.draft())
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(v))
	}
}

// deleteVetHandler godoc
// @Summary Borrar veterinario
// @Tags vets
// @Param vetID path string true "ID del veterinario"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /vets/{vetID} [delete]
func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "vetID")); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(v Vet) VetResponse {
	specs := v.Specialties
	if specs == nil {
		specs = []string{}
	}
	return VetResponse{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Specialties: specs,
	}
}

func toResponses(items []Vet) []VetResponse {
	out := make([]VetResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toResponse(v))
	}
	return out
}
