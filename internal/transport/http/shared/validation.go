package shared

import (
	"net/http"

	"github.com/bangasho83/hummane/internal/transport/http/api"
	"github.com/bangasho83/hummane/internal/validate"
)

// Reject writes the standard validation failure response when the error map
// is non-empty and reports whether it did.
func Reject(w http.ResponseWriter, requestID string, errs validate.Errors) bool {
	if !errs.Has() {
		return false
	}
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": errs},
		requestID,
	)
	return true
}
