// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/vesselworks/shorestation/internal/models"
)

// TelemetryRepository persists decoded vessel snapshots.
//
// Both operations collapse backend errors to a boolean: errors are
// logged at the operation boundary and never propagated. StoreSnapshot
// runs its six category inserts strictly sequentially over one borrowed
// connection, stops at the first failure, and does not roll back the
// categories that already landed.
type TelemetryRepository interface {
	TestConnection(ctx context.Context) bool
	StoreSnapshot(ctx context.Context, snapshot models.SensorSnapshot, info models.ReceiptInfo) bool
}
