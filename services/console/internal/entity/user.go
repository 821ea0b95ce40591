package entity

type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeUser
}

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserType `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}

type AuthState struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	User            *User    `json:"user"`
	UserType        UserType `json:"userType"`
	Loading         bool     `json:"loading"`
	Error           *string  `json:"error"`
}

// IsAdmin is the single predicate every admin view is gated on.
func (a AuthState) IsAdmin() bool {
	return a.IsAuthenticated && a.UserType == UserTypeAdmin
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
