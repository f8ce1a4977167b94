// FilePath: internal/models/models.telemetry.go
package models

// Gps is a single position fix from the vessel's GPS unit.
type Gps struct {
	Latitude  float32 `json:"latitude" bson:"latitude"`
	Longitude float32 `json:"longitude" bson:"longitude"`
	Speed     float32 `json:"speed" bson:"speed"`
	Heading   float32 `json:"heading" bson:"heading"`
}

// AisShip is one AIS contact observed by the vessel.
// IDs arrive as unsigned 32-bit MMSI-style identifiers.
type AisShip struct {
	ID        uint32  `json:"id" bson:"id"`
	Latitude  float32 `json:"latitude" bson:"latitude"`
	Longitude float32 `json:"longitude" bson:"longitude"`
	Sog       float32 `json:"sog" bson:"sog"`
	Cog       float32 `json:"cog" bson:"cog"`
	Rot       float32 `json:"rot" bson:"rot"`
	Width     float32 `json:"width" bson:"width"`
	Length    float32 `json:"length" bson:"length"`
}

// GenericSensor is an uninterpreted sensor channel: an id and a raw
// unsigned reading.
type GenericSensor struct {
	ID   uint32 `json:"id" bson:"id"`
	Data uint64 `json:"data" bson:"data"`
}

// Battery is one battery pack reading.
type Battery struct {
	Voltage float32 `json:"voltage" bson:"voltage"`
	Current float32 `json:"current" bson:"current"`
}

// WindSensor is one wind reading; direction is degrees in a 16-bit range.
type WindSensor struct {
	Speed     float32 `json:"speed" bson:"speed"`
	Direction int32   `json:"direction" bson:"direction"`
}

// Waypoint is one point of the vessel's locally planned path.
type Waypoint struct {
	Latitude  float32 `json:"latitude" bson:"latitude"`
	Longitude float32 `json:"longitude" bson:"longitude"`
}

// LocalPath is the vessel's current planned path.
type LocalPath struct {
	Waypoints []Waypoint `json:"waypoints" bson:"waypoints"`
}

// SensorSnapshot is one full batch of readings received together in a
// single transmission, covering every sensor category on board.
type SensorSnapshot struct {
	Gps            Gps             `json:"gps"`
	AisShips       []AisShip       `json:"aisShips"`
	GenericSensors []GenericSensor `json:"genericSensors"`
	Batteries      []Battery       `json:"batteries"`
	WindSensors    []WindSensor    `json:"windSensors"`
	LocalPath      LocalPath       `json:"localPath"`
}

// ReceiptInfo is the metadata the satellite gateway attaches to a
// transmission. The persistence layer only consumes Timestamp; the rest
// is kept for logging and monitoring labels.
type ReceiptInfo struct {
	Imei      string  `json:"imei"`
	Momsn     int     `json:"momsn"`
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
	Cep       uint32  `json:"cep"`
	Timestamp string  `json:"timestamp"`
}
