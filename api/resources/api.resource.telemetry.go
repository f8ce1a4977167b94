// FilePath: api/resources/api.resource.telemetry.go
package resources

import (
	"context"
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/internal/errors"
	"github.com/vesselworks/shorestation/internal/models"
)

// TelemetryService is the slice of the hub service the telemetry
// handlers need.
type TelemetryService interface {
	HandleTransmission(ctx context.Context, payload string, info models.ReceiptInfo) (bool, error)
	CheckConnection(ctx context.Context) bool
}

// TelemetryHandlers encapsulates the telemetry-related HTTP handlers
type TelemetryHandlers struct {
	hubservice TelemetryService
}

// The gateway ignores unknown form fields across firmware revisions.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// transmissionForm is the form-encoded callback body the satellite
// gateway posts for each received transmission.
type transmissionForm struct {
	Imei         string  `schema:"imei"`
	Momsn        int     `schema:"momsn"`
	TransmitTime string  `schema:"transmit_time"`
	Latitude     float32 `schema:"iridium_latitude"`
	Longitude    float32 `schema:"iridium_longitude"`
	Cep          uint32  `schema:"iridium_cep"`
	Data         string  `schema:"data"`
}

// ReceiveTransmission handles the satellite gateway webhook: it decodes
// the receipt metadata and the hex-framed snapshot payload, then hands
// both to the hub service for persistence.
func (h *TelemetryHandlers) ReceiveTransmission(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if err := r.ParseForm(); err != nil {
		respondWithError(w, errors.NewValidationError("invalid form body", err).WithRequestID(requestID))
		return
	}

	var form transmissionForm
	if err := formDecoder.Decode(&form, r.PostForm); err != nil {
		respondWithError(w, errors.NewValidationError("invalid transmission fields", err).WithRequestID(requestID))
		return
	}
	if form.Data == "" {
		respondWithError(w, errors.NewValidationError("missing data field", nil).WithRequestID(requestID))
		return
	}

	info := models.ReceiptInfo{
		Imei:      form.Imei,
		Momsn:     form.Momsn,
		Latitude:  form.Latitude,
		Longitude: form.Longitude,
		Cep:       form.Cep,
		Timestamp: form.TransmitTime,
	}

	stored, err := h.hubservice.HandleTransmission(r.Context(), form.Data, info)
	if err != nil {
		respondWithError(w, errors.NewValidationError("undecodable snapshot payload", err).WithRequestID(requestID))
		return
	}
	if !stored {
		respondWithError(w, errors.NewDatabaseError("failed to store snapshot", nil).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "stored"})
}

// Health reports whether the storage backend is reachable.
func (h *TelemetryHandlers) Health(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	if !h.hubservice.CheckConnection(r.Context()) {
		respondWithError(w, errors.NewUnavailableError("storage backend unreachable", nil).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}
