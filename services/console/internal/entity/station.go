package entity

type StationStatus string

const (
	StationOperational StationStatus = "operational"
	StationMaintenance StationStatus = "maintenance"
)

func (s StationStatus) Valid() bool {
	return s == StationOperational || s == StationMaintenance
}

type Station struct {
	ID     string        `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Lat    float64       `json:"lat" yaml:"lat"`
	Lng    float64       `json:"lng" yaml:"lng"`
	Status StationStatus `json:"status" yaml:"status"`
}
