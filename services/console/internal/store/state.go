package store

import "metro-console/services/console/internal/entity"

// Slice names one independently reduced partition of the console state.
type Slice string

const (
	SliceAuth      Slice = "auth"
	SliceApp       Slice = "app"
	SliceTrains    Slice = "trains"
	SliceStaff     Slice = "staff"
	SliceSchedules Slice = "schedules"
	SliceStations  Slice = "stations"
)

// AllSlices lists every slice in state-tree order.
var AllSlices = []Slice{SliceAuth, SliceApp, SliceTrains, SliceStaff, SliceSchedules, SliceStations}

func (s Slice) Valid() bool {
	switch s {
	case SliceAuth, SliceApp, SliceTrains, SliceStaff, SliceSchedules, SliceStations:
		return true
	}
	return false
}

// hasCollection reports whether the slice carries loading/error flags
// alongside a record collection.
func (s Slice) hasCollection() bool {
	switch s {
	case SliceTrains, SliceStaff, SliceSchedules, SliceStations:
		return true
	}
	return false
}

type AppState struct {
	Theme            entity.Theme          `json:"theme"`
	SidebarCollapsed bool                  `json:"sidebarCollapsed"`
	Notifications    []entity.Notification `json:"notifications"`
}

type TrainState struct {
	Trains  []entity.Train `json:"trains"`
	Loading bool           `json:"loading"`
	Error   *string        `json:"error"`
}

type StaffState struct {
	Staff   []entity.Staff `json:"staff"`
	Loading bool           `json:"loading"`
	Error   *string        `json:"error"`
}

type ScheduleState struct {
	Schedules []entity.Schedule `json:"schedules"`
	Loading   bool              `json:"loading"`
	Error     *string           `json:"error"`
}

type StationState struct {
	Stations []entity.Station `json:"stations"`
	Loading  bool             `json:"loading"`
	Error    *string          `json:"error"`
}

// State is the whole console state tree. Values handed out by the store are
// shared with later states and must be treated as read-only.
type State struct {
	Auth      entity.AuthState `json:"auth"`
	App       AppState         `json:"app"`
	Trains    TrainState       `json:"trains"`
	Staff     StaffState       `json:"staff"`
	Schedules ScheduleState    `json:"schedules"`
	Stations  StationState     `json:"stations"`
}

// Slice returns the sub-tree for one slice, for JSON selection.
func (s State) Slice(name Slice) (interface{}, bool) {
	switch name {
	case SliceAuth:
		return s.Auth, true
	case SliceApp:
		return s.App, true
	case SliceTrains:
		return s.Trains, true
	case SliceStaff:
		return s.Staff, true
	case SliceSchedules:
		return s.Schedules, true
	case SliceStations:
		return s.Stations, true
	}
	return nil, false
}
