package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Write serializes body as JSON with the given status code.
func Write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}
