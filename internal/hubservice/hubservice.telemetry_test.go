package hubservice

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/vesselworks/shorestation/internal/models"
	"github.com/vesselworks/shorestation/internal/monitoring"
)

// fakeTelemetryRepo implements repository.TelemetryRepository for testing
type fakeTelemetryRepo struct {
	storeResult bool
	reachable   bool

	storedSnapshot models.SensorSnapshot
	storedInfo     models.ReceiptInfo
	storeCalls     int
}

func (f *fakeTelemetryRepo) TestConnection(ctx context.Context) bool {
	return f.reachable
}

func (f *fakeTelemetryRepo) StoreSnapshot(ctx context.Context, snapshot models.SensorSnapshot, info models.ReceiptInfo) bool {
	f.storeCalls++
	f.storedSnapshot = snapshot
	f.storedInfo = info
	return f.storeResult
}

func encodeSnapshot(t *testing.T, snapshot models.SensorSnapshot) string {
	t.Helper()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	return hex.EncodeToString(raw)
}

func TestHandleTransmission_StoresDecodedSnapshot(t *testing.T) {
	repo := &fakeTelemetryRepo{storeResult: true}
	svc := New(repo, monitoring.NewService())

	snapshot := models.SensorSnapshot{
		Gps:         models.Gps{Latitude: 48.5, Longitude: -123.4},
		WindSensors: []models.WindSensor{{Speed: 5, Direction: 90}},
	}
	info := models.ReceiptInfo{Imei: "300234010753370", Timestamp: "t1"}

	stored, err := svc.HandleTransmission(context.Background(), encodeSnapshot(t, snapshot), info)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored {
		t.Fatal("expected transmission to be stored")
	}
	if repo.storeCalls != 1 {
		t.Fatalf("expected 1 store call, got %d", repo.storeCalls)
	}
	if repo.storedInfo.Timestamp != "t1" {
		t.Errorf("expected timestamp t1, got %q", repo.storedInfo.Timestamp)
	}
	if len(repo.storedSnapshot.WindSensors) != 1 || repo.storedSnapshot.WindSensors[0].Direction != 90 {
		t.Errorf("snapshot did not survive decoding: %+v", repo.storedSnapshot)
	}
}

func TestHandleTransmission_InvalidHex(t *testing.T) {
	repo := &fakeTelemetryRepo{storeResult: true}
	svc := New(repo, monitoring.NewService())

	_, err := svc.HandleTransmission(context.Background(), "not-hex!!", models.ReceiptInfo{Timestamp: "t1"})
	if err == nil {
		t.Fatal("expected error for invalid hex payload")
	}
	if repo.storeCalls != 0 {
		t.Errorf("store must not be called for an undecodable payload")
	}
}

func TestHandleTransmission_InvalidJSON(t *testing.T) {
	repo := &fakeTelemetryRepo{storeResult: true}
	svc := New(repo, monitoring.NewService())

	payload := hex.EncodeToString([]byte("{not json"))
	_, err := svc.HandleTransmission(context.Background(), payload, models.ReceiptInfo{Timestamp: "t1"})
	if err == nil {
		t.Fatal("expected error for invalid JSON payload")
	}
	if repo.storeCalls != 0 {
		t.Errorf("store must not be called for an undecodable payload")
	}
}

func TestHandleTransmission_StoreFailure(t *testing.T) {
	repo := &fakeTelemetryRepo{storeResult: false}
	svc := New(repo, monitoring.NewService())

	stored, err := svc.HandleTransmission(context.Background(),
		encodeSnapshot(t, models.SensorSnapshot{}), models.ReceiptInfo{Timestamp: "t1"})
	if err != nil {
		t.Fatalf("store failure must not surface as an error, got: %v", err)
	}
	if stored {
		t.Fatal("expected stored=false when the repository reports failure")
	}
}

func TestCheckConnection(t *testing.T) {
	svc := New(&fakeTelemetryRepo{reachable: true}, monitoring.NewService())
	if !svc.CheckConnection(context.Background()) {
		t.Error("expected CheckConnection to report true")
	}

	svc = New(&fakeTelemetryRepo{reachable: false}, monitoring.NewService())
	if svc.CheckConnection(context.Background()) {
		t.Error("expected CheckConnection to report false")
	}
}
