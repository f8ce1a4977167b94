// FilePath: internal/repository/mongodb/mongodb.documents.go
package mongodb

import (
	"github.com/vesselworks/shorestation/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Document builders. Each snapshot yields exactly one document per
// category; list categories carry a single array field of per-item
// sub-documents. Every document gets a top-level "timestamp" field
// holding the transmission's timestamp string.
//
// BSON has no unsigned integer type, so wide unsigned identifiers
// (AIS ship ids, generic sensor id/data) are widened to int64 before
// encoding; the wind direction field is narrowed to int16.

func gpsDocument(gps models.Gps, timestamp string) bson.D {
	return bson.D{
		{Key: "latitude", Value: float64(gps.Latitude)},
		{Key: "longitude", Value: float64(gps.Longitude)},
		{Key: "speed", Value: float64(gps.Speed)},
		{Key: "heading", Value: float64(gps.Heading)},
		{Key: "timestamp", Value: timestamp},
	}
}

func aisShipsDocument(ships []models.AisShip, timestamp string) bson.D {
	arr := make(bson.A, 0, len(ships))
	for _, ship := range ships {
		arr = append(arr, bson.D{
			{Key: "id", Value: int64(ship.ID)},
			{Key: "latitude", Value: float64(ship.Latitude)},
			{Key: "longitude", Value: float64(ship.Longitude)},
			{Key: "sog", Value: float64(ship.Sog)},
			{Key: "cog", Value: float64(ship.Cog)},
			{Key: "rot", Value: float64(ship.Rot)},
			{Key: "width", Value: float64(ship.Width)},
			{Key: "length", Value: float64(ship.Length)},
		})
	}
	return bson.D{
		{Key: "ships", Value: arr},
		{Key: "timestamp", Value: timestamp},
	}
}

func genericSensorsDocument(sensors []models.GenericSensor, timestamp string) bson.D {
	arr := make(bson.A, 0, len(sensors))
	for _, sensor := range sensors {
		arr = append(arr, bson.D{
			{Key: "id", Value: int64(sensor.ID)},
			{Key: "data", Value: int64(sensor.Data)},
		})
	}
	return bson.D{
		{Key: "genericSensors", Value: arr},
		{Key: "timestamp", Value: timestamp},
	}
}

func batteriesDocument(batteries []models.Battery, timestamp string) bson.D {
	arr := make(bson.A, 0, len(batteries))
	for _, battery := range batteries {
		arr = append(arr, bson.D{
			{Key: "voltage", Value: float64(battery.Voltage)},
			{Key: "current", Value: float64(battery.Current)},
		})
	}
	return bson.D{
		{Key: "batteries", Value: arr},
		{Key: "timestamp", Value: timestamp},
	}
}

func windSensorsDocument(sensors []models.WindSensor, timestamp string) bson.D {
	arr := make(bson.A, 0, len(sensors))
	for _, sensor := range sensors {
		arr = append(arr, bson.D{
			{Key: "speed", Value: float64(sensor.Speed)},
			{Key: "direction", Value: int16(sensor.Direction)},
		})
	}
	return bson.D{
		{Key: "windSensors", Value: arr},
		{Key: "timestamp", Value: timestamp},
	}
}

func localPathDocument(path models.LocalPath, timestamp string) bson.D {
	arr := make(bson.A, 0, len(path.Waypoints))
	for _, waypoint := range path.Waypoints {
		arr = append(arr, bson.D{
			{Key: "latitude", Value: float64(waypoint.Latitude)},
			{Key: "longitude", Value: float64(waypoint.Longitude)},
		})
	}
	return bson.D{
		{Key: "waypoints", Value: arr},
		{Key: "timestamp", Value: timestamp},
	}
}
