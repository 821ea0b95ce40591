// Package route maps console paths to views and applies the admin gate.
package route

import (
	"path"
	"strings"

	"metro-console/services/console/internal/entity"
)

const (
	Landing        = "/"
	AdminRoot      = "/admin"
	AdminDashboard = "/admin/dashboard"
	UserDashboard  = "/user"
)

type View string

const (
	ViewFrontPage          View = "FrontPage"
	ViewUserDashboard      View = "UserDashboard"
	ViewTicketBooking      View = "TicketBooking"
	ViewFeedback           View = "Feedback"
	ViewDashboard          View = "Dashboard"
	ViewTrainOperations    View = "TrainOperations"
	ViewVerifyOperations   View = "VerifyOperations"
	ViewStaffManagement    View = "StaffManagement"
	ViewScheduleManagement View = "ScheduleManagement"
	ViewLiveMap            View = "LiveMap"
	ViewReports            View = "Reports"
	ViewAddTrain           View = "AddTrain"
	ViewAddStaff           View = "AddStaff"
	ViewAddSchedule        View = "AddSchedule"
	ViewNotFound           View = "NotFound"
)

type Route struct {
	Path  string `json:"path"`
	View  View   `json:"view"`
	Admin bool   `json:"admin"`
}

var table = []Route{
	{Path: "/", View: ViewFrontPage},
	{Path: "/user", View: ViewUserDashboard},
	{Path: "/ticket", View: ViewTicketBooking},
	{Path: "/feedback", View: ViewFeedback},
	{Path: "/admin/dashboard", View: ViewDashboard, Admin: true},
	{Path: "/admin/train-operations", View: ViewTrainOperations, Admin: true},
	{Path: "/admin/verify-operations", View: ViewVerifyOperations, Admin: true},
	{Path: "/admin/staff-management", View: ViewStaffManagement, Admin: true},
	{Path: "/admin/schedule-management", View: ViewScheduleManagement, Admin: true},
	{Path: "/admin/live-map", View: ViewLiveMap, Admin: true},
	{Path: "/admin/reports", View: ViewReports, Admin: true},
	{Path: "/admin/add-train", View: ViewAddTrain, Admin: true},
	{Path: "/admin/add-staff", View: ViewAddStaff, Admin: true},
	{Path: "/admin/add-schedule", View: ViewAddSchedule, Admin: true},
}

var byPath = func() map[string]Route {
	m := make(map[string]Route, len(table))
	for _, r := range table {
		m[r.Path] = r
	}
	return m
}()

// Table returns a copy of the static route table.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Resolution is where a navigation ends up.
type Resolution struct {
	Requested  string `json:"requested"`
	Path       string `json:"path"`
	View       View   `json:"view"`
	Redirected bool   `json:"redirected"`
	NotFound   bool   `json:"notFound"`
}

// Resolve maps a requested path to a view. Admin views are reachable only
// when auth.IsAdmin(); every other session is sent to the landing page.
// /admin itself forwards admins to the dashboard.
func Resolve(requested string, auth entity.AuthState) Resolution {
	p := normalize(requested)
	res := Resolution{Requested: requested, Path: p}

	if p == AdminRoot {
		target := Landing
		if auth.IsAdmin() {
			target = AdminDashboard
		}
		res.Path = target
		res.View = byPath[target].View
		res.Redirected = true
		return res
	}

	r, ok := byPath[p]
	if !ok {
		res.View = ViewNotFound
		res.NotFound = true
		return res
	}
	if r.Admin && !auth.IsAdmin() {
		res.Path = Landing
		res.View = ViewFrontPage
		res.Redirected = true
		return res
	}
	res.View = r.View
	return res
}

// LandingFor is where a freshly logged-in user is sent.
func LandingFor(t entity.UserType) string {
	if t == entity.UserTypeAdmin {
		return AdminDashboard
	}
	return UserDashboard
}

func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return Landing
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
