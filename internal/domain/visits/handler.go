package visits

import (
	"net/http"
	"strings"
	"time"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/visits", createVisitHandler(svc))
	r.Get("/pets/{petID}/visits", listVisitsHandler(svc))

	r.Get("/visits/{visitID}", getVisitHandler(svc))
	r.Delete("/visits/{visitID}", deleteVisitHandler(svc))
}

// createVisitRequest es el cuerpo para registrar una visita.
type createVisitRequest struct {
	ID          string `json:"id,omitempty"`         // opcional, para reintentos idempotentes
	VisitDate   string `json:"visit_date,omitempty"` // YYYY-MM-DD, default hoy
	Description string `json:"description"`
}

// VisitResponse representa una visita devuelta por la API.
type VisitResponse struct {
	ID          string `json:"id"`
	PetID       string `json:"pet_id"`
	VisitDate   string `json:"visit_date"`
	Description string `json:"description"`
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Crea una visita para la mascota. Escribe la fila de la visita y después la copia en visit_by_pet; si la segunda falla responde 503 con el id para reintentar.
// @Tags visits
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body createVisitRequest true "Datos de la visita"
// @Success 201 {object} VisitResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse "pet not found"
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVisitRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, err)
			return
		}

		var date time.Time
		if strings.TrimSpace(req.VisitDate) != "" {
			t, err := time.Parse(time.DateOnly, req.VisitDate)
			if err != nil {
				httpjson.WriteError(w, apperrors.NewValidationError("visit_date", "must be YYYY-MM-DD"))
				return
			}
			date = t
		}

		v, err := svc.Create(r.Context(), chi.URLParam(r, "petID"), Draft{
			ID:          req.ID,
			Date:        date,
			Description: req.Description,
		})
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(v))
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas de una mascota
// @Tags visits
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} VisitResponse
// @Failure 503 {object} httpjson.ErrorResponse
// @Router /pets/{petID}/visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponses(items))
	}
}

// getVisitHandler godoc
// @Summary Obtener visita
// @Tags visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 200 {object} VisitResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /visits/{visitID} [get]
func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			httpjson.WriteError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(v))
	}
}

// deleteVisitHandler godoc
// @Summary Borrar visita
// @Tags visits
// @Param visitID path string true "ID de la visita"
// @Success 204
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /visits/{visitID} [delete]
func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "visitID")); err != nil {
			httpjson.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ToResponse lo usa también pets para embeber visitas.
func ToResponse(v Visit) VisitResponse {
	return VisitResponse{
		ID:          v.ID,
		PetID:       v.PetID,
		VisitDate:   v.Date.Format(time.DateOnly),
		Description: v.Description,
	}
}

func ToResponses(items []Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(items))
	for _, v := range items {
		out = append(out, ToResponse(v))
	}
	return out
}
