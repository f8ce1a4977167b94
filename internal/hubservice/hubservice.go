// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"fmt"

	"github.com/vesselworks/shorestation/internal/monitoring"
	"github.com/vesselworks/shorestation/internal/repository"
)

// HubService contains the telemetry repository and service-wide dependencies
type HubService struct {
	Telemetry  repository.TelemetryRepository
	Monitoring *monitoring.Service
}

// New creates a new HubService instance
func New(telemetry repository.TelemetryRepository, mon *monitoring.Service) *HubService {
	return &HubService{
		Telemetry:  telemetry,
		Monitoring: mon,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Telemetry == nil {
		return fmt.Errorf("missing required repository: telemetry")
	}
	return nil
}
