package store

import "metro-console/services/console/internal/entity"

// Action is a request to change the console state. The set of actions is
// closed: every kind is declared in this file and matched by the reducers.
type Action interface {
	// Type is the wire name of the action, e.g. "trains/addTrain".
	Type() string
	isAction()
}

type sealed struct{}

func (sealed) isAction() {}

// Loading and error flags, addressed to one record slice.

type SetLoading struct {
	sealed
	Slice   Slice
	Loading bool
}

type SetError struct {
	sealed
	Slice Slice
	Error *string
}

func (a SetLoading) Type() string { return string(a.Slice) + "/setLoading" }
func (a SetError) Type() string   { return string(a.Slice) + "/setError" }

// Trains

type SetTrains struct {
	sealed
	Trains []entity.Train
}

type AddTrain struct {
	sealed
	Train entity.Train
}

type UpdateTrain struct {
	sealed
	Train entity.Train
}

type RemoveTrain struct {
	sealed
	ID string
}

type UpdateTrainStatus struct {
	sealed
	ID     string
	Status entity.TrainStatus
}

func (SetTrains) Type() string         { return "trains/setTrains" }
func (AddTrain) Type() string          { return "trains/addTrain" }
func (UpdateTrain) Type() string       { return "trains/updateTrain" }
func (RemoveTrain) Type() string       { return "trains/removeTrain" }
func (UpdateTrainStatus) Type() string { return "trains/updateTrainStatus" }

// Staff

type SetStaff struct {
	sealed
	Staff []entity.Staff
}

type AddStaff struct {
	sealed
	Member entity.Staff
}

type UpdateStaff struct {
	sealed
	Member entity.Staff
}

type RemoveStaff struct {
	sealed
	ID string
}

type UpdateStaffStatus struct {
	sealed
	ID     string
	Status entity.StaffStatus
}

func (SetStaff) Type() string          { return "staff/setStaff" }
func (AddStaff) Type() string          { return "staff/addStaff" }
func (UpdateStaff) Type() string       { return "staff/updateStaff" }
func (RemoveStaff) Type() string       { return "staff/removeStaff" }
func (UpdateStaffStatus) Type() string { return "staff/updateStaffStatus" }

// Schedules

type SetSchedules struct {
	sealed
	Schedules []entity.Schedule
}

type AddSchedule struct {
	sealed
	Schedule entity.Schedule
}

type UpdateSchedule struct {
	sealed
	Schedule entity.Schedule
}

type RemoveSchedule struct {
	sealed
	ID string
}

type UpdateScheduleStatus struct {
	sealed
	ID     string
	Status entity.ScheduleStatus
}

func (SetSchedules) Type() string         { return "schedules/setSchedules" }
func (AddSchedule) Type() string          { return "schedules/addSchedule" }
func (UpdateSchedule) Type() string       { return "schedules/updateSchedule" }
func (RemoveSchedule) Type() string       { return "schedules/removeSchedule" }
func (UpdateScheduleStatus) Type() string { return "schedules/updateScheduleStatus" }

// Stations

type SetStations struct {
	sealed
	Stations []entity.Station
}

type AddStation struct {
	sealed
	Station entity.Station
}

type UpdateStation struct {
	sealed
	Station entity.Station
}

type RemoveStation struct {
	sealed
	ID string
}

type UpdateStationStatus struct {
	sealed
	ID     string
	Status entity.StationStatus
}

func (SetStations) Type() string         { return "stations/setStations" }
func (AddStation) Type() string          { return "stations/addStation" }
func (UpdateStation) Type() string       { return "stations/updateStation" }
func (RemoveStation) Type() string       { return "stations/removeStation" }
func (UpdateStationStatus) Type() string { return "stations/updateStationStatus" }

// Auth

type LoginStart struct{ sealed }

type LoginSuccess struct {
	sealed
	User     entity.User
	UserType entity.UserType
}

type LoginFailure struct {
	sealed
	Error string
}

type Logout struct{ sealed }

type ClearError struct{ sealed }

func (LoginStart) Type() string   { return "auth/loginStart" }
func (LoginSuccess) Type() string { return "auth/loginSuccess" }
func (LoginFailure) Type() string { return "auth/loginFailure" }
func (Logout) Type() string       { return "auth/logout" }
func (ClearError) Type() string   { return "auth/clearError" }

// App: theme, sidebar and the notification list

type ToggleTheme struct{ sealed }

type SetTheme struct {
	sealed
	Theme entity.Theme
}

type ToggleSidebar struct{ sealed }

type SetSidebarCollapsed struct {
	sealed
	Collapsed bool
}

// AddNotification carries only the caller-supplied fields; id, timestamp and
// read are assigned by the reducer.
type AddNotification struct {
	sealed
	Title   string
	Message string
	Kind    entity.NotificationType
}

type MarkNotificationAsRead struct {
	sealed
	ID string
}

type MarkAllNotificationsAsRead struct{ sealed }

type RemoveNotification struct {
	sealed
	ID string
}

func (ToggleTheme) Type() string                { return "app/toggleTheme" }
func (SetTheme) Type() string                   { return "app/setTheme" }
func (ToggleSidebar) Type() string              { return "app/toggleSidebar" }
func (SetSidebarCollapsed) Type() string        { return "app/setSidebarCollapsed" }
func (AddNotification) Type() string            { return "app/addNotification" }
func (MarkNotificationAsRead) Type() string     { return "app/markNotificationAsRead" }
func (MarkAllNotificationsAsRead) Type() string { return "app/markAllNotificationsAsRead" }
func (RemoveNotification) Type() string         { return "app/removeNotification" }
