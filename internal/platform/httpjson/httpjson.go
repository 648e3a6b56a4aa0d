// Package httpjson junta los helpers JSON que usan los handlers de todos los módulos.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-clinic-rowstore/internal/platform/apperrors"
)

// ErrorResponse es el cuerpo de todo error de la API. Error lleva el kind, así
// el cliente distingue not_found / mapping / storage / connection sin mirar el status.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	ID      string   `json:"id,omitempty"`      // entidad afectada en escrituras parciales
	Applied []string `json:"applied,omitempty"` // filas ya escritas
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{
		Error:   string(apperrors.KindOf(err)),
		Message: err.Error(),
	}
	var pw *apperrors.PartialWriteError
	if errors.As(err, &pw) {
		resp.ID = pw.ID
		resp.Applied = pw.Applied
	}
	Write(w, apperrors.HTTPStatus(err), resp)
}

// Decode lee el body JSON; cualquier error se reporta como invalid_input.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.NewValidationError("body", "invalid json")
	}
	return nil
}
