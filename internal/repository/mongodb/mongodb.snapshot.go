// FilePath: internal/repository/mongodb/mongodb.snapshot.go
package mongodb

import (
	"context"

	nuts "github.com/vaudience/go-nuts"
	"github.com/vesselworks/shorestation/internal/database"
	"github.com/vesselworks/shorestation/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// One collection per sensor category.
const (
	CollectionGPS         = "gps"
	CollectionAisShips    = "ais-ships"
	CollectionDataSensors = "data-sensors"
	CollectionBatteries   = "batteries"
	CollectionWindSensors = "wind-sensors"
	CollectionLocalPath   = "local-path"
)

// SnapshotRepo stores one document per category per snapshot.
type SnapshotRepo struct {
	db database.DB
}

func NewSnapshotRepository(db database.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// TestConnection runs a ping command against the configured database
// over one pooled connection. Any transport or command error is logged
// and reported as false; it never propagates.
func (r *SnapshotRepo) TestConnection(ctx context.Context) bool {
	pingCmd := bson.D{{Key: "ping", Value: 1}}
	if err := r.db.Database().RunCommand(ctx, pingCmd).Err(); err != nil {
		nuts.L.Errorf("[SnapshotRepo] Ping failed: %v", err)
		return false
	}
	return true
}

// StoreSnapshot writes all six categories of a snapshot, each into its
// own collection, sharing one session for the whole call. The category
// inserts run in a fixed order and stop at the first failure; documents
// already inserted stay in place (no rollback), so a false result does
// not say which categories were persisted.
func (r *SnapshotRepo) StoreSnapshot(ctx context.Context, snapshot models.SensorSnapshot, info models.ReceiptInfo) bool {
	// Only the timestamp of the receipt metadata is persisted for now.
	timestamp := info.Timestamp

	sess, err := r.db.Client().StartSession()
	if err != nil {
		nuts.L.Errorf("[SnapshotRepo] Failed to start session: %v", err)
		return false
	}
	defer sess.EndSession(ctx)

	ok := false
	_ = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		db := r.db.Database()
		ok = r.storeAll(sc, categoryCollections{
			gps:         db.Collection(CollectionGPS),
			aisShips:    db.Collection(CollectionAisShips),
			dataSensors: db.Collection(CollectionDataSensors),
			batteries:   db.Collection(CollectionBatteries),
			windSensors: db.Collection(CollectionWindSensors),
			localPath:   db.Collection(CollectionLocalPath),
		}, snapshot, timestamp)
		return nil
	})
	return ok
}

// inserter is the one method of *mongo.Collection the category stores use.
type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type categoryCollections struct {
	gps         inserter
	aisShips    inserter
	dataSensors inserter
	batteries   inserter
	windSensors inserter
	localPath   inserter
}

func (r *SnapshotRepo) storeAll(ctx context.Context, colls categoryCollections, snapshot models.SensorSnapshot, timestamp string) bool {
	return r.storeGps(ctx, colls.gps, snapshot.Gps, timestamp) &&
		r.storeAisShips(ctx, colls.aisShips, snapshot.AisShips, timestamp) &&
		r.storeGenericSensors(ctx, colls.dataSensors, snapshot.GenericSensors, timestamp) &&
		r.storeBatteries(ctx, colls.batteries, snapshot.Batteries, timestamp) &&
		r.storeWindSensors(ctx, colls.windSensors, snapshot.WindSensors, timestamp) &&
		r.storeLocalPath(ctx, colls.localPath, snapshot.LocalPath, timestamp)
}

func (r *SnapshotRepo) storeGps(ctx context.Context, coll inserter, gps models.Gps, timestamp string) bool {
	return r.insert(ctx, coll, CollectionGPS, gpsDocument(gps, timestamp))
}

func (r *SnapshotRepo) storeAisShips(ctx context.Context, coll inserter, ships []models.AisShip, timestamp string) bool {
	return r.insert(ctx, coll, CollectionAisShips, aisShipsDocument(ships, timestamp))
}

func (r *SnapshotRepo) storeGenericSensors(ctx context.Context, coll inserter, sensors []models.GenericSensor, timestamp string) bool {
	return r.insert(ctx, coll, CollectionDataSensors, genericSensorsDocument(sensors, timestamp))
}

func (r *SnapshotRepo) storeBatteries(ctx context.Context, coll inserter, batteries []models.Battery, timestamp string) bool {
	return r.insert(ctx, coll, CollectionBatteries, batteriesDocument(batteries, timestamp))
}

func (r *SnapshotRepo) storeWindSensors(ctx context.Context, coll inserter, sensors []models.WindSensor, timestamp string) bool {
	return r.insert(ctx, coll, CollectionWindSensors, windSensorsDocument(sensors, timestamp))
}

func (r *SnapshotRepo) storeLocalPath(ctx context.Context, coll inserter, path models.LocalPath, timestamp string) bool {
	return r.insert(ctx, coll, CollectionLocalPath, localPathDocument(path, timestamp))
}

// insert performs the single round trip of a category store. No retry;
// an unacknowledged or failed write is logged and reported as false.
func (r *SnapshotRepo) insert(ctx context.Context, coll inserter, name string, doc bson.D) bool {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		nuts.L.Errorf("[SnapshotRepo] Insert into %s failed: %v", name, err)
		return false
	}
	return true
}
