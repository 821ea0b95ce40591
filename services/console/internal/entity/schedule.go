package entity

type ScheduleStatus string

const (
	ScheduleOperational ScheduleStatus = "operational"
	ScheduleDelayed     ScheduleStatus = "delayed"
	ScheduleMaintenance ScheduleStatus = "maintenance"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleOperational, ScheduleDelayed, ScheduleMaintenance:
		return true
	}
	return false
}

// Schedule is one timetable slot. Departure and Arrival are wall-clock
// strings ("06:00"), or "-" for units parked in maintenance.
type Schedule struct {
	ID        string         `json:"id" yaml:"id"`
	TrainID   string         `json:"trainId" yaml:"trainId"`
	Route     string         `json:"route" yaml:"route"`
	Departure string         `json:"departure" yaml:"departure"`
	Arrival   string         `json:"arrival" yaml:"arrival"`
	Driver    string         `json:"driver" yaml:"driver"`
	Status    ScheduleStatus `json:"status" yaml:"status"`
}
