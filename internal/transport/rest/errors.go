package rest

import (
	"net/http"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/presenter"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   domain.ErrorKind `json:"error"`
	Message string           `json:"message"`
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnsupportedLanguage:
		return http.StatusUnprocessableEntity
	case domain.KindRequestFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code and a message in the caller's language.
func writeError(w http.ResponseWriter, err error, lang domain.Language) {
	kind := domain.Kind(err)
	writeJSON(w, statusFor(kind), ErrorResponse{
		Error:   kind,
		Message: presenter.ErrorMessage(err, lang),
	})
}
