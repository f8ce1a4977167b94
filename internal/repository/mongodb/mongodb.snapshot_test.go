package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/vesselworks/shorestation/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection records inserted documents and can be told to fail.
type fakeCollection struct {
	name     string
	fail     bool
	inserted []interface{}
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.fail {
		return nil, errors.New("insert rejected")
	}
	f.inserted = append(f.inserted, document)
	return &mongo.InsertOneResult{}, nil
}

func newFakeCollections() (categoryCollections, []*fakeCollection) {
	fakes := []*fakeCollection{
		{name: CollectionGPS},
		{name: CollectionAisShips},
		{name: CollectionDataSensors},
		{name: CollectionBatteries},
		{name: CollectionWindSensors},
		{name: CollectionLocalPath},
	}
	colls := categoryCollections{
		gps:         fakes[0],
		aisShips:    fakes[1],
		dataSensors: fakes[2],
		batteries:   fakes[3],
		windSensors: fakes[4],
		localPath:   fakes[5],
	}
	return colls, fakes
}

func sampleSnapshot() models.SensorSnapshot {
	return models.SensorSnapshot{
		Gps:            models.Gps{Latitude: 48.5, Longitude: -123.4, Speed: 2.5, Heading: 180},
		AisShips:       []models.AisShip{{ID: 316000001}},
		GenericSensors: []models.GenericSensor{{ID: 7, Data: 42}},
		Batteries:      []models.Battery{{Voltage: 12.6, Current: 1.2}},
		WindSensors:    []models.WindSensor{{Speed: 5, Direction: 90}},
		LocalPath:      models.LocalPath{Waypoints: []models.Waypoint{{Latitude: 49, Longitude: -124}}},
	}
}

func TestStoreAll_AllSucceed(t *testing.T) {
	repo := &SnapshotRepo{}
	colls, fakes := newFakeCollections()

	ok := repo.storeAll(context.Background(), colls, sampleSnapshot(), "t1")
	if !ok {
		t.Fatal("expected storeAll to succeed")
	}
	for _, fake := range fakes {
		if len(fake.inserted) != 1 {
			t.Errorf("collection %s: expected 1 insert, got %d", fake.name, len(fake.inserted))
		}
	}
}

// A failure at position k must leave the documents of positions 1..k-1
// in place and never touch positions k+1..6.
func TestStoreAll_ShortCircuitsOnFirstFailure(t *testing.T) {
	for failAt := 0; failAt < 6; failAt++ {
		repo := &SnapshotRepo{}
		colls, fakes := newFakeCollections()
		fakes[failAt].fail = true

		ok := repo.storeAll(context.Background(), colls, sampleSnapshot(), "t1")
		if ok {
			t.Fatalf("failAt=%d: expected storeAll to fail", failAt)
		}

		for i, fake := range fakes {
			want := 0
			if i < failAt {
				want = 1
			}
			if len(fake.inserted) != want {
				t.Errorf("failAt=%d collection %s: expected %d inserts, got %d",
					failAt, fake.name, want, len(fake.inserted))
			}
		}
	}
}

func TestStoreAll_EmptyCategoriesStillInsert(t *testing.T) {
	repo := &SnapshotRepo{}
	colls, fakes := newFakeCollections()

	ok := repo.storeAll(context.Background(), colls, models.SensorSnapshot{}, "t0")
	if !ok {
		t.Fatal("expected storeAll to succeed on an empty snapshot")
	}
	for _, fake := range fakes {
		if len(fake.inserted) != 1 {
			t.Errorf("collection %s: expected 1 insert for empty snapshot, got %d",
				fake.name, len(fake.inserted))
		}
	}
}
