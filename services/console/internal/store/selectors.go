package store

import "metro-console/services/console/internal/entity"

func (s State) TrainByID(id string) (entity.Train, bool) {
	for _, t := range s.Trains.Trains {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Train{}, false
}

func (s State) StationByID(id string) (entity.Station, bool) {
	for _, st := range s.Stations.Stations {
		if st.ID == id {
			return st, true
		}
	}
	return entity.Station{}, false
}

func (s State) ActiveTrains() []entity.Train {
	var out []entity.Train
	for _, t := range s.Trains.Trains {
		if t.Status == entity.TrainActive {
			out = append(out, t)
		}
	}
	return out
}

func (s State) StaffOnDuty() []entity.Staff {
	var out []entity.Staff
	for _, m := range s.Staff.Staff {
		if m.Status == entity.StaffOnDuty {
			out = append(out, m)
		}
	}
	return out
}

func (s State) UnreadNotifications() int {
	n := 0
	for _, notification := range s.App.Notifications {
		if !notification.Read {
			n++
		}
	}
	return n
}

// Dashboard is the admin landing summary.
type Dashboard struct {
	ActiveTrains          int                           `json:"activeTrains"`
	TotalTrains           int                           `json:"totalTrains"`
	StaffOnDuty           int                           `json:"staffOnDuty"`
	TotalStaff            int                           `json:"totalStaff"`
	SchedulesByStatus     map[entity.ScheduleStatus]int `json:"schedulesByStatus"`
	StationsInMaintenance int                           `json:"stationsInMaintenance"`
	UnreadNotifications   int                           `json:"unreadNotifications"`
}

func (s State) Dashboard() Dashboard {
	d := Dashboard{
		ActiveTrains:        len(s.ActiveTrains()),
		TotalTrains:         len(s.Trains.Trains),
		StaffOnDuty:         len(s.StaffOnDuty()),
		TotalStaff:          len(s.Staff.Staff),
		SchedulesByStatus:   make(map[entity.ScheduleStatus]int),
		UnreadNotifications: s.UnreadNotifications(),
	}
	for _, sc := range s.Schedules.Schedules {
		d.SchedulesByStatus[sc.Status]++
	}
	for _, st := range s.Stations.Stations {
		if st.Status == entity.StationMaintenance {
			d.StationsInMaintenance++
		}
	}
	return d
}
