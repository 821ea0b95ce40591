package store

import (
	"encoding/json"
	"strings"
	"testing"

	"metro-console/services/console/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		payload string
		want    Action
	}{
		{"status patch", "trains/updateTrainStatus", `{"id":"K101","status":"delayed"}`,
			UpdateTrainStatus{ID: "K101", Status: entity.TrainDelayed}},
		{"bare id", "staff/removeStaff", `"3"`, RemoveStaff{ID: "3"}},
		{"no payload", "app/markAllNotificationsAsRead", ``, MarkAllNotificationsAsRead{}},
		{"loading flag", "schedules/setLoading", `true`, SetLoading{Slice: SliceSchedules, Loading: true}},
		{"clear error", "stations/setError", `null`, SetError{Slice: SliceStations}},
		{"theme", "app/setTheme", `"dark"`, SetTheme{Theme: entity.ThemeDark}},
		{"notification", "app/addNotification", `{"title":"Delay","message":"K102 +5m","type":"warning"}`,
			AddNotification{Title: "Delay", Message: "K102 +5m", Kind: entity.NotificationWarning}},
		{"login", "auth/loginSuccess", `{"user":{"id":"1","name":"Admin User","email":"admin@kochimetro.org","role":"admin"},"userType":"admin"}`,
			LoginSuccess{User: entity.User{ID: "1", Name: "Admin User", Email: "admin@kochimetro.org", Role: entity.UserTypeAdmin}, UserType: entity.UserTypeAdmin}},
		{"add station", "stations/addStation", `{"id":"kakkanad","name":"Kakkanad","lat":10.01,"lng":76.35,"status":"maintenance"}`,
			AddStation{Station: entity.Station{ID: "kakkanad", Name: "Kakkanad", Lat: 10.01, Lng: 76.35, Status: entity.StationMaintenance}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction(tt.typ, json.RawMessage(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.typ, got.Type())
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		payload string
		want    error
	}{
		{"unknown type", "trains/explode", `{}`, ErrUnknownAction},
		{"bad status", "trains/updateTrainStatus", `{"id":"K101","status":"teleporting"}`, ErrInvalidPayload},
		{"missing id", "staff/updateStaffStatus", `{"status":"on-duty"}`, ErrInvalidPayload},
		{"unknown field", "schedules/addSchedule", `{"id":"9","status":"operational","platform":2}`, ErrInvalidPayload},
		{"missing payload", "trains/addTrain", ``, ErrInvalidPayload},
		{"wrong shape", "trains/removeTrain", `{"id":"K101"}`, ErrInvalidPayload},
		{"bad theme", "app/setTheme", `"sepia"`, ErrInvalidPayload},
		{"bad user type", "auth/loginSuccess", `{"user":{"id":"1"},"userType":"root"}`, ErrInvalidPayload},
		{"empty title", "app/addNotification", `{"title":"","type":"info"}`, ErrInvalidPayload},
		{"bad record in list", "staff/setStaff", `[{"id":"1","status":"on-duty"},{"id":"2","status":"asleep"}]`, ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction(tt.typ, json.RawMessage(tt.payload))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestActionTypes_CoverEverySlice(t *testing.T) {
	types := ActionTypes()

	for _, sl := range AllSlices {
		found := false
		for _, typ := range types {
			if strings.HasPrefix(typ, string(sl)+"/") {
				found = true
				break
			}
		}
		assert.True(t, found, "no actions for slice %s", sl)
	}
}

func TestLoadFixtures_Validate(t *testing.T) {
	doc := `
trains:
  - {id: K1, status: active}
  - {id: K1, status: parked}
staff: []
`
	_, err := LoadFixtures(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "K1"`)
	assert.Contains(t, err.Error(), `invalid status "parked"`)
}

func TestLoadFixtures_UnknownField(t *testing.T) {
	_, err := LoadFixtures(strings.NewReader("trains:\n  - {id: K1, status: active, speed: 80}\n"))
	assert.Error(t, err)
}

func TestLoadFixturesFile_EmptyPathUsesDefaults(t *testing.T) {
	f, err := LoadFixturesFile("")
	require.NoError(t, err)
	assert.Len(t, f.Trains, 5)
	assert.NoError(t, f.Validate())
}
