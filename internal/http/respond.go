package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oaktable/menu-service/internal/order"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

// writeLifecycleError maps a lifecycle failure to a response. Validation
// failures are user-facing and carry a machine-readable code.
func writeLifecycleError(w http.ResponseWriter, err error) {
	var verr *order.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": verr.Message,
			"code":  verr.Code,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, "order could not be processed")
}
