// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/recount/pkg/httpx"
	wardrobedomain "github.com/ghuser/recount/services/wardrobe/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors controls whether 5xx responses carry the real error
// message or the generic status text. Enabled once at startup in
// production so backend details (Redis addresses, provider responses)
// never reach clients.
func HideInternalErrors(enabled bool) {
	hideInternal.Store(enabled)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wardrobedomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, wardrobedomain.ErrNameRequired),
		errors.Is(err, wardrobedomain.ErrInvalidCategory):
		return http.StatusBadRequest // 400
	case errors.Is(err, wardrobedomain.ErrUploadFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
