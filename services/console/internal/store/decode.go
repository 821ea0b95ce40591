package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"metro-console/services/console/internal/entity"
)

var (
	ErrUnknownAction  = errors.New("unknown action type")
	ErrInvalidPayload = errors.New("invalid action payload")
)

type decoder func(payload json.RawMessage) (Action, error)

var decoders = map[string]decoder{
	"auth/loginStart": constant(LoginStart{}),
	"auth/loginSuccess": func(p json.RawMessage) (Action, error) {
		var v struct {
			User     entity.User     `json:"user"`
			UserType entity.UserType `json:"userType"`
		}
		if err := strict(p, &v); err != nil {
			return nil, err
		}
		if !v.UserType.Valid() {
			return nil, invalid("userType %q", v.UserType)
		}
		return LoginSuccess{User: v.User, UserType: v.UserType}, nil
	},
	"auth/loginFailure": func(p json.RawMessage) (Action, error) {
		var msg string
		if err := strict(p, &msg); err != nil {
			return nil, err
		}
		return LoginFailure{Error: msg}, nil
	},
	"auth/logout":     constant(Logout{}),
	"auth/clearError": constant(ClearError{}),

	"app/toggleTheme": constant(ToggleTheme{}),
	"app/setTheme": func(p json.RawMessage) (Action, error) {
		var theme entity.Theme
		if err := strict(p, &theme); err != nil {
			return nil, err
		}
		if !theme.Valid() {
			return nil, invalid("theme %q", theme)
		}
		return SetTheme{Theme: theme}, nil
	},
	"app/toggleSidebar": constant(ToggleSidebar{}),
	"app/setSidebarCollapsed": func(p json.RawMessage) (Action, error) {
		var collapsed bool
		if err := strict(p, &collapsed); err != nil {
			return nil, err
		}
		return SetSidebarCollapsed{Collapsed: collapsed}, nil
	},
	"app/addNotification": func(p json.RawMessage) (Action, error) {
		var v struct {
			Title   string                  `json:"title"`
			Message string                  `json:"message"`
			Type    entity.NotificationType `json:"type"`
		}
		if err := strict(p, &v); err != nil {
			return nil, err
		}
		if v.Title == "" {
			return nil, invalid("notification title is required")
		}
		if !v.Type.Valid() {
			return nil, invalid("notification type %q", v.Type)
		}
		return AddNotification{Title: v.Title, Message: v.Message, Kind: v.Type}, nil
	},
	"app/markNotificationAsRead":     byID(func(id string) Action { return MarkNotificationAsRead{ID: id} }),
	"app/markAllNotificationsAsRead": constant(MarkAllNotificationsAsRead{}),
	"app/removeNotification":         byID(func(id string) Action { return RemoveNotification{ID: id} }),

	"trains/setLoading": setLoading(SliceTrains),
	"trains/setError":   setError(SliceTrains),
	"trains/setTrains": func(p json.RawMessage) (Action, error) {
		var trains []entity.Train
		if err := strict(p, &trains); err != nil {
			return nil, err
		}
		for _, t := range trains {
			if err := validTrain(t); err != nil {
				return nil, err
			}
		}
		return SetTrains{Trains: trains}, nil
	},
	"trains/addTrain":    train(func(t entity.Train) Action { return AddTrain{Train: t} }),
	"trains/updateTrain": train(func(t entity.Train) Action { return UpdateTrain{Train: t} }),
	"trains/removeTrain": byID(func(id string) Action { return RemoveTrain{ID: id} }),
	"trains/updateTrainStatus": func(p json.RawMessage) (Action, error) {
		id, status, err := statusPatch[entity.TrainStatus](p)
		if err != nil {
			return nil, err
		}
		return UpdateTrainStatus{ID: id, Status: status}, nil
	},

	"staff/setLoading": setLoading(SliceStaff),
	"staff/setError":   setError(SliceStaff),
	"staff/setStaff": func(p json.RawMessage) (Action, error) {
		var staff []entity.Staff
		if err := strict(p, &staff); err != nil {
			return nil, err
		}
		for _, m := range staff {
			if err := validStaff(m); err != nil {
				return nil, err
			}
		}
		return SetStaff{Staff: staff}, nil
	},
	"staff/addStaff":    member(func(m entity.Staff) Action { return AddStaff{Member: m} }),
	"staff/updateStaff": member(func(m entity.Staff) Action { return UpdateStaff{Member: m} }),
	"staff/removeStaff": byID(func(id string) Action { return RemoveStaff{ID: id} }),
	"staff/updateStaffStatus": func(p json.RawMessage) (Action, error) {
		id, status, err := statusPatch[entity.StaffStatus](p)
		if err != nil {
			return nil, err
		}
		return UpdateStaffStatus{ID: id, Status: status}, nil
	},

	"schedules/setLoading": setLoading(SliceSchedules),
	"schedules/setError":   setError(SliceSchedules),
	"schedules/setSchedules": func(p json.RawMessage) (Action, error) {
		var schedules []entity.Schedule
		if err := strict(p, &schedules); err != nil {
			return nil, err
		}
		for _, sc := range schedules {
			if err := validSchedule(sc); err != nil {
				return nil, err
			}
		}
		return SetSchedules{Schedules: schedules}, nil
	},
	"schedules/addSchedule":    schedule(func(sc entity.Schedule) Action { return AddSchedule{Schedule: sc} }),
	"schedules/updateSchedule": schedule(func(sc entity.Schedule) Action { return UpdateSchedule{Schedule: sc} }),
	"schedules/removeSchedule": byID(func(id string) Action { return RemoveSchedule{ID: id} }),
	"schedules/updateScheduleStatus": func(p json.RawMessage) (Action, error) {
		id, status, err := statusPatch[entity.ScheduleStatus](p)
		if err != nil {
			return nil, err
		}
		return UpdateScheduleStatus{ID: id, Status: status}, nil
	},

	"stations/setLoading": setLoading(SliceStations),
	"stations/setError":   setError(SliceStations),
	"stations/setStations": func(p json.RawMessage) (Action, error) {
		var stations []entity.Station
		if err := strict(p, &stations); err != nil {
			return nil, err
		}
		for _, st := range stations {
			if err := validStation(st); err != nil {
				return nil, err
			}
		}
		return SetStations{Stations: stations}, nil
	},
	"stations/addStation":    station(func(st entity.Station) Action { return AddStation{Station: st} }),
	"stations/updateStation": station(func(st entity.Station) Action { return UpdateStation{Station: st} }),
	"stations/removeStation": byID(func(id string) Action { return RemoveStation{ID: id} }),
	"stations/updateStationStatus": func(p json.RawMessage) (Action, error) {
		id, status, err := statusPatch[entity.StationStatus](p)
		if err != nil {
			return nil, err
		}
		return UpdateStationStatus{ID: id, Status: status}, nil
	},
}

// DecodeAction turns a wire action ({"type": ..., "payload": ...}) into its
// typed form. Payload shapes follow the action names: a bare id for removals,
// {id, status} for status updates, a full record for add/update.
func DecodeAction(actionType string, payload json.RawMessage) (Action, error) {
	decode, ok := decoders[actionType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, actionType)
	}
	return decode(payload)
}

// ActionTypes lists every action name DecodeAction accepts.
func ActionTypes() []string {
	out := make([]string, 0, len(decoders))
	for name := range decoders {
		out = append(out, name)
	}
	return out
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, fmt.Sprintf(format, args...))
}

func strict(p json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(p)) == 0 {
		return invalid("payload is required")
	}
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func constant(a Action) decoder {
	return func(json.RawMessage) (Action, error) { return a, nil }
}

func byID(build func(string) Action) decoder {
	return func(p json.RawMessage) (Action, error) {
		var id string
		if err := strict(p, &id); err != nil {
			return nil, err
		}
		if id == "" {
			return nil, invalid("id is required")
		}
		return build(id), nil
	}
}

func setLoading(target Slice) decoder {
	return func(p json.RawMessage) (Action, error) {
		var loading bool
		if err := strict(p, &loading); err != nil {
			return nil, err
		}
		return SetLoading{Slice: target, Loading: loading}, nil
	}
}

func setError(target Slice) decoder {
	return func(p json.RawMessage) (Action, error) {
		var msg *string
		if err := strict(p, &msg); err != nil {
			return nil, err
		}
		return SetError{Slice: target, Error: msg}, nil
	}
}

type validStatus interface {
	~string
	Valid() bool
}

func statusPatch[S validStatus](p json.RawMessage) (string, S, error) {
	var v struct {
		ID     string `json:"id"`
		Status S      `json:"status"`
	}
	if err := strict(p, &v); err != nil {
		return "", v.Status, err
	}
	if v.ID == "" {
		return "", v.Status, invalid("id is required")
	}
	if !v.Status.Valid() {
		return "", v.Status, invalid("status %q", string(v.Status))
	}
	return v.ID, v.Status, nil
}

func validTrain(t entity.Train) error {
	if t.ID == "" {
		return invalid("train id is required")
	}
	if !t.Status.Valid() {
		return invalid("train %s status %q", t.ID, t.Status)
	}
	return nil
}

func validStaff(m entity.Staff) error {
	if m.ID == "" {
		return invalid("staff id is required")
	}
	if !m.Status.Valid() {
		return invalid("staff %s status %q", m.ID, m.Status)
	}
	return nil
}

func validSchedule(sc entity.Schedule) error {
	if sc.ID == "" {
		return invalid("schedule id is required")
	}
	if !sc.Status.Valid() {
		return invalid("schedule %s status %q", sc.ID, sc.Status)
	}
	return nil
}

func validStation(st entity.Station) error {
	if st.ID == "" {
		return invalid("station id is required")
	}
	if !st.Status.Valid() {
		return invalid("station %s status %q", st.ID, st.Status)
	}
	return nil
}

func train(build func(entity.Train) Action) decoder {
	return func(p json.RawMessage) (Action, error) {
		var t entity.Train
		if err := strict(p, &t); err != nil {
			return nil, err
		}
		if err := validTrain(t); err != nil {
			return nil, err
		}
		return build(t), nil
	}
}

func member(build func(entity.Staff) Action) decoder {
	return func(p json.RawMessage) (Action, error) {
		var m entity.Staff
		if err := strict(p, &m); err != nil {
			return nil, err
		}
		if err := validStaff(m); err != nil {
			return nil, err
		}
		return build(m), nil
	}
}

func schedule(build func(entity.Schedule) Action) decoder {
	return func(p json.RawMessage) (Action, error) {
		var sc entity.Schedule
		if err := strict(p, &sc); err != nil {
			return nil, err
		}
		if err := validSchedule(sc); err != nil {
			return nil, err
		}
		return build(sc), nil
	}
}

func station(build func(entity.Station) Action) decoder {
	return func(p json.RawMessage) (Action, error) {
		var st entity.Station
		if err := strict(p, &st); err != nil {
			return nil, err
		}
		if err := validStation(st); err != nil {
			return nil, err
		}
		return build(st), nil
	}
}
