// FilePath: internal/hubservice/hubservice.telemetry.go
package hubservice

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/internal/models"
)

// DecodeSnapshotPayload unpacks the hex-framed JSON payload of a
// satellite transmission into a snapshot. The gateway hex-encodes the
// message body, so an undecodable payload means a corrupt or truncated
// transmission.
func DecodeSnapshotPayload(payload string) (models.SensorSnapshot, error) {
	var snapshot models.SensorSnapshot

	raw, err := hex.DecodeString(payload)
	if err != nil {
		return snapshot, fmt.Errorf("payload is not valid hex: %w", err)
	}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return snapshot, fmt.Errorf("payload is not a valid snapshot: %w", err)
	}
	return snapshot, nil
}

// HandleTransmission decodes one transmission and persists its snapshot.
// A decode failure is returned as an error (the caller rejects the
// request); a store failure is reported as stored=false with no error
// detail, matching the repository's boolean contract.
func (s *HubService) HandleTransmission(ctx context.Context, payload string, info models.ReceiptInfo) (bool, error) {
	snapshot, err := DecodeSnapshotPayload(payload)
	if err != nil {
		return false, err
	}

	stored := s.Telemetry.StoreSnapshot(ctx, snapshot, info)
	if !stored {
		nuts.L.Warnf("[HubService] Snapshot from %s at %s was not fully stored", info.Imei, info.Timestamp)
		s.Monitoring.RecordEvent("snapshot_store_failed", map[string]string{
			"imei":      info.Imei,
			"timestamp": info.Timestamp,
		})
		return false, nil
	}

	s.Monitoring.RecordEvent("snapshot_stored", map[string]string{
		"imei":      info.Imei,
		"timestamp": info.Timestamp,
	})
	return true, nil
}

// CheckConnection reports whether the storage backend is reachable.
func (s *HubService) CheckConnection(ctx context.Context) bool {
	return s.Telemetry.TestConnection(ctx)
}
