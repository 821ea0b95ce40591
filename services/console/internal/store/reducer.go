package store

import (
	"time"

	"metro-console/services/console/internal/entity"
)

type env struct {
	now   func() time.Time
	newID func() string
}

// reduce runs the action through every slice reducer and reports which
// slices produced a new value.
func reduce(st State, a Action, e env) (State, []Slice) {
	var changed []Slice
	var ok bool

	if st.Auth, ok = reduceAuth(st.Auth, a); ok {
		changed = append(changed, SliceAuth)
	}
	if st.App, ok = reduceApp(st.App, a, e); ok {
		changed = append(changed, SliceApp)
	}
	if st.Trains, ok = reduceTrains(st.Trains, a, e); ok {
		changed = append(changed, SliceTrains)
	}
	if st.Staff, ok = reduceStaff(st.Staff, a); ok {
		changed = append(changed, SliceStaff)
	}
	if st.Schedules, ok = reduceSchedules(st.Schedules, a); ok {
		changed = append(changed, SliceSchedules)
	}
	if st.Stations, ok = reduceStations(st.Stations, a); ok {
		changed = append(changed, SliceStations)
	}
	return st, changed
}

// flags handles the loading/error pair shared by the record slices.
func flags(target Slice, loading *bool, errPtr **string, a Action) bool {
	switch a := a.(type) {
	case SetLoading:
		if a.Slice != target || *loading == a.Loading {
			return false
		}
		*loading = a.Loading
		return true
	case SetError:
		if a.Slice != target || sameError(*errPtr, a.Error) {
			return false
		}
		*errPtr = copyError(a.Error)
		return true
	}
	return false
}

func sameError(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyError(e *string) *string {
	if e == nil {
		return nil
	}
	v := *e
	return &v
}

func reduceAuth(s entity.AuthState, a Action) (entity.AuthState, bool) {
	switch a := a.(type) {
	case LoginStart:
		s.Loading = true
		s.Error = nil
	case LoginSuccess:
		user := a.User
		s.Loading = false
		s.IsAuthenticated = true
		s.User = &user
		s.UserType = a.UserType
		s.Error = nil
	case LoginFailure:
		msg := a.Error
		s.Loading = false
		s.IsAuthenticated = false
		s.User = nil
		s.UserType = ""
		s.Error = &msg
	case Logout:
		s = entity.AuthState{}
	case ClearError:
		if s.Error == nil {
			return s, false
		}
		s.Error = nil
	default:
		return s, false
	}
	return s, true
}

func notificationID(n entity.Notification) string { return n.ID }

func reduceApp(s AppState, a Action, e env) (AppState, bool) {
	switch a := a.(type) {
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
	case SetTheme:
		if s.Theme == a.Theme {
			return s, false
		}
		s.Theme = a.Theme
	case ToggleSidebar:
		s.SidebarCollapsed = !s.SidebarCollapsed
	case SetSidebarCollapsed:
		if s.SidebarCollapsed == a.Collapsed {
			return s, false
		}
		s.SidebarCollapsed = a.Collapsed
	case AddNotification:
		n := entity.Notification{
			ID:        e.newID(),
			Title:     a.Title,
			Message:   a.Message,
			Type:      a.Kind,
			Timestamp: e.now(),
		}
		out := make([]entity.Notification, 0, len(s.Notifications)+1)
		s.Notifications = append(append(out, n), s.Notifications...)
	case MarkNotificationAsRead:
		var ok bool
		s.Notifications, ok = patchByID(s.Notifications, notificationID, a.ID, func(n *entity.Notification) {
			n.Read = true
		})
		return s, ok
	case MarkAllNotificationsAsRead:
		out := make([]entity.Notification, len(s.Notifications))
		for i, n := range s.Notifications {
			n.Read = true
			out[i] = n
		}
		s.Notifications = out
	case RemoveNotification:
		var ok bool
		s.Notifications, ok = removeByID(s.Notifications, notificationID, a.ID)
		return s, ok
	default:
		return s, false
	}
	return s, true
}

func trainID(t entity.Train) string { return t.ID }

// touch stamps lastUpdated, keeping it strictly increasing per train even
// when the clock has not advanced since the previous stamp.
func touch(t *entity.Train, now time.Time) {
	if !now.After(t.LastUpdated) {
		now = t.LastUpdated.Add(time.Nanosecond)
	}
	t.LastUpdated = now
}

func stamped(t entity.Train, e env) entity.Train {
	if t.LastUpdated.IsZero() {
		t.LastUpdated = e.now()
	}
	return t
}

func reduceTrains(s TrainState, a Action, e env) (TrainState, bool) {
	if flags(SliceTrains, &s.Loading, &s.Error, a) {
		return s, true
	}

	var ok bool
	switch a := a.(type) {
	case SetTrains:
		trains := dedupe(a.Trains, trainID)
		for i := range trains {
			trains[i] = stamped(trains[i], e)
		}
		s.Trains, ok = trains, true
	case AddTrain:
		s.Trains, ok = appendUnique(s.Trains, trainID, stamped(a.Train, e))
	case UpdateTrain:
		s.Trains, ok = replaceByID(s.Trains, trainID, stamped(a.Train, e))
	case RemoveTrain:
		s.Trains, ok = removeByID(s.Trains, trainID, a.ID)
	case UpdateTrainStatus:
		s.Trains, ok = patchByID(s.Trains, trainID, a.ID, func(t *entity.Train) {
			t.Status = a.Status
			touch(t, e.now())
		})
	}
	return s, ok
}

func staffID(m entity.Staff) string { return m.ID }

func reduceStaff(s StaffState, a Action) (StaffState, bool) {
	if flags(SliceStaff, &s.Loading, &s.Error, a) {
		return s, true
	}

	var ok bool
	switch a := a.(type) {
	case SetStaff:
		s.Staff, ok = dedupe(a.Staff, staffID), true
	case AddStaff:
		s.Staff, ok = appendUnique(s.Staff, staffID, a.Member)
	case UpdateStaff:
		s.Staff, ok = replaceByID(s.Staff, staffID, a.Member)
	case RemoveStaff:
		s.Staff, ok = removeByID(s.Staff, staffID, a.ID)
	case UpdateStaffStatus:
		s.Staff, ok = patchByID(s.Staff, staffID, a.ID, func(m *entity.Staff) {
			m.Status = a.Status
		})
	}
	return s, ok
}

func scheduleID(sc entity.Schedule) string { return sc.ID }

func reduceSchedules(s ScheduleState, a Action) (ScheduleState, bool) {
	if flags(SliceSchedules, &s.Loading, &s.Error, a) {
		return s, true
	}

	var ok bool
	switch a := a.(type) {
	case SetSchedules:
		s.Schedules, ok = dedupe(a.Schedules, scheduleID), true
	case AddSchedule:
		s.Schedules, ok = appendUnique(s.Schedules, scheduleID, a.Schedule)
	case UpdateSchedule:
		s.Schedules, ok = replaceByID(s.Schedules, scheduleID, a.Schedule)
	case RemoveSchedule:
		s.Schedules, ok = removeByID(s.Schedules, scheduleID, a.ID)
	case UpdateScheduleStatus:
		s.Schedules, ok = patchByID(s.Schedules, scheduleID, a.ID, func(sc *entity.Schedule) {
			sc.Status = a.Status
		})
	}
	return s, ok
}

func stationID(st entity.Station) string { return st.ID }

func reduceStations(s StationState, a Action) (StationState, bool) {
	if flags(SliceStations, &s.Loading, &s.Error, a) {
		return s, true
	}

	var ok bool
	switch a := a.(type) {
	case SetStations:
		s.Stations, ok = dedupe(a.Stations, stationID), true
	case AddStation:
		s.Stations, ok = appendUnique(s.Stations, stationID, a.Station)
	case UpdateStation:
		s.Stations, ok = replaceByID(s.Stations, stationID, a.Station)
	case RemoveStation:
		s.Stations, ok = removeByID(s.Stations, stationID, a.ID)
	case UpdateStationStatus:
		s.Stations, ok = patchByID(s.Stations, stationID, a.ID, func(st *entity.Station) {
			st.Status = a.Status
		})
	}
	return s, ok
}
