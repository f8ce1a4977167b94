// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/internal/errors"
	"github.com/vesselworks/shorestation/internal/hubservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Telemetry *TelemetryHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService) *Resources {
	return &Resources{
		Telemetry: &TelemetryHandlers{hubservice: svc},
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		nuts.L.Errorf("[Resources] Failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, apiErr *errors.APIError) {
	nuts.L.Warnf("[Resources] %v", apiErr)
	respondWithJSON(w, apiErr.Code, apiErr)
}
