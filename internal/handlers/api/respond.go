package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/wastelandforge/warband/internal/errors"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service error codes onto HTTP statuses. Rule rejections
// are 422s so clients can distinguish them from malformed requests.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeInvalidArgument, apperrors.CodeValidation:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeAlreadyExists:
		status = http.StatusConflict
	case apperrors.CodeIneligible, apperrors.CodeLimitExceeded, apperrors.CodeAmbiguousTarget:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: err.Error(),
		Meta:    apperrors.GetMeta(err),
	}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, apperrors.InvalidArgument("invalid request body"))
		return false
	}
	return true
}
