package route

import (
	"testing"

	"metro-console/services/console/internal/entity"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous = entity.AuthState{}
	customer  = entity.AuthState{IsAuthenticated: true, UserType: entity.UserTypeUser}
	admin     = entity.AuthState{IsAuthenticated: true, UserType: entity.UserTypeAdmin}
	// userType alone must not open admin views.
	staleAdmin = entity.AuthState{IsAuthenticated: false, UserType: entity.UserTypeAdmin}
)

func TestResolve_AdminPathsRedirectWhenNotAdmin(t *testing.T) {
	for _, r := range Table() {
		if !r.Admin {
			continue
		}
		for name, auth := range map[string]entity.AuthState{
			"anonymous":   anonymous,
			"customer":    customer,
			"stale admin": staleAdmin,
		} {
			t.Run(r.Path+"/"+name, func(t *testing.T) {
				res := Resolve(r.Path, auth)
				assert.Equal(t, Landing, res.Path)
				assert.Equal(t, ViewFrontPage, res.View)
				assert.True(t, res.Redirected)
			})
		}
	}
}

func TestResolve_AdminPathsOpenForAdmin(t *testing.T) {
	for _, r := range Table() {
		res := Resolve(r.Path, admin)
		assert.Equal(t, r.Path, res.Path)
		assert.Equal(t, r.View, res.View)
		assert.False(t, res.Redirected)
	}
}

func TestResolve_PublicPaths(t *testing.T) {
	tests := map[string]View{
		"/":         ViewFrontPage,
		"/user":     ViewUserDashboard,
		"/ticket":   ViewTicketBooking,
		"/feedback": ViewFeedback,
	}
	for p, view := range tests {
		res := Resolve(p, anonymous)
		assert.Equal(t, view, res.View, p)
		assert.False(t, res.Redirected, p)
	}
}

func TestResolve_AdminRoot(t *testing.T) {
	res := Resolve("/admin", admin)
	assert.Equal(t, AdminDashboard, res.Path)
	assert.Equal(t, ViewDashboard, res.View)
	assert.True(t, res.Redirected)

	res = Resolve("/admin", customer)
	assert.Equal(t, Landing, res.Path)
	assert.Equal(t, ViewFrontPage, res.View)
}

func TestResolve_NotFound(t *testing.T) {
	for _, p := range []string{"/nope", "/admin/secret", "/user/settings"} {
		res := Resolve(p, admin)
		assert.True(t, res.NotFound, p)
		assert.Equal(t, ViewNotFound, res.View, p)
	}
}

func TestResolve_Normalizes(t *testing.T) {
	assert.Equal(t, ViewFeedback, Resolve("/feedback/", anonymous).View)
	assert.Equal(t, ViewTicketBooking, Resolve("ticket?from=aluva", anonymous).View)
	assert.Equal(t, ViewFrontPage, Resolve("", anonymous).View)
	assert.Equal(t, ViewFrontPage, Resolve("/admin/../admin/reports", customer).View)
}

func TestLandingFor(t *testing.T) {
	assert.Equal(t, AdminDashboard, LandingFor(entity.UserTypeAdmin))
	assert.Equal(t, UserDashboard, LandingFor(entity.UserTypeUser))
}
