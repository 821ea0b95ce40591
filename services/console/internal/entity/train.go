package entity

import "time"

type TrainStatus string

const (
	TrainActive      TrainStatus = "active"
	TrainDelayed     TrainStatus = "delayed"
	TrainMaintenance TrainStatus = "maintenance"
)

func (s TrainStatus) Valid() bool {
	switch s {
	case TrainActive, TrainDelayed, TrainMaintenance:
		return true
	}
	return false
}

type Train struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Route       string      `json:"route" yaml:"route"`
	Driver      string      `json:"driver" yaml:"driver"`
	NextStation string      `json:"nextStation" yaml:"nextStation"`
	Status      TrainStatus `json:"status" yaml:"status"`
	LastUpdated time.Time   `json:"lastUpdated" yaml:"-"`
}
