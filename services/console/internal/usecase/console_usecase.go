package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"metro-console/pkg/logger"
	"metro-console/services/console/internal/entity"
	"metro-console/services/console/internal/repo/preference"
	"metro-console/services/console/internal/route"
	"metro-console/services/console/internal/session"
	"metro-console/services/console/internal/store"

	"github.com/google/uuid"
)

// ErrValidation marks request data the console refuses to act on.
var ErrValidation = errors.New("validation failed")

const maxPassengers = 10

type ConsoleUseCase interface {
	StartSession(ctx context.Context) (*session.Session, error)
	EndSession(ctx context.Context, sessionID string) error
	ResetSession(ctx context.Context, sessionID string) (store.State, error)
	Session(sessionID string) (*session.Session, error)
	State(sessionID string) (store.State, error)
	Dispatch(ctx context.Context, sessionID, actionType string, payload json.RawMessage) (store.State, error)
	Login(ctx context.Context, sessionID string, userType entity.UserType) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) (store.State, error)
	ShowToast(sessionID string, t entity.Toast) (entity.Toast, error)
	DismissToast(sessionID string, id int64) (bool, error)
	Toasts(sessionID string) ([]entity.Toast, error)
	Theme(sessionID string) (entity.Theme, error)
	SetTheme(ctx context.Context, sessionID string, theme entity.Theme) (entity.Theme, error)
	ToggleTheme(ctx context.Context, sessionID string) (entity.Theme, error)
	ResolveRoute(sessionID, path string) (route.Resolution, error)
	IsAdmin(sessionID string) (bool, error)
	Dashboard(sessionID string) (store.Dashboard, error)
	SubmitFeedback(sessionID string, fb entity.Feedback) (*entity.Feedback, error)
	BookTicket(sessionID string, req TicketRequest) (*entity.Ticket, error)
}

type LoginResult struct {
	User     entity.User `json:"user"`
	Redirect string      `json:"redirect"`
	State    store.State `json:"state"`
}

type TicketRequest struct {
	PassengerName string `json:"passengerName"`
	FromStation   string `json:"fromStation"`
	ToStation     string `json:"toStation"`
	Passengers    int    `json:"passengers"`
	JourneyDate   string `json:"journeyDate"`
}

type Settings struct {
	DefaultTheme entity.Theme
	TicketFare   float64
}

type consoleUseCase struct {
	sessions *session.Manager
	themes   preference.ThemeRepository
	settings Settings
	logger   *logger.Logger
	now      func() time.Time
}

func NewConsoleUseCase(sessions *session.Manager, themes preference.ThemeRepository, settings Settings, logger *logger.Logger) ConsoleUseCase {
	if !settings.DefaultTheme.Valid() {
		settings.DefaultTheme = entity.ThemeLight
	}
	return &consoleUseCase{
		sessions: sessions,
		themes:   themes,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *consoleUseCase) StartSession(ctx context.Context) (*session.Session, error) {
	s := uc.sessions.Create()
	uc.applySavedTheme(ctx, s)
	return s, nil
}

func (uc *consoleUseCase) EndSession(ctx context.Context, sessionID string) error {
	if err := uc.sessions.End(sessionID); err != nil {
		return err
	}
	if err := uc.themes.Delete(ctx, sessionID); err != nil {
		uc.logger.Warn("Failed to drop theme preference for session %s: %v", sessionID, err)
	}
	return nil
}

// ResetSession re-seeds the session as a page reload would. The saved theme
// survives the reset.
func (uc *consoleUseCase) ResetSession(ctx context.Context, sessionID string) (store.State, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return store.State{}, err
	}
	s.Store.Reset()
	uc.applySavedTheme(ctx, s)
	uc.logger.Info("Session %s reset to fixtures", sessionID)
	return s.Store.State(), nil
}

func (uc *consoleUseCase) Session(sessionID string) (*session.Session, error) {
	return uc.sessions.Get(sessionID)
}

func (uc *consoleUseCase) State(sessionID string) (store.State, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return store.State{}, err
	}
	return s.Store.State(), nil
}

func (uc *consoleUseCase) Dispatch(ctx context.Context, sessionID, actionType string, payload json.RawMessage) (store.State, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return store.State{}, err
	}
	action, err := store.DecodeAction(actionType, payload)
	if err != nil {
		return store.State{}, err
	}
	return uc.dispatch(ctx, s, action), nil
}

// dispatch applies the action and writes the theme through to the
// preference store whenever it changed.
func (uc *consoleUseCase) dispatch(ctx context.Context, s *session.Session, action store.Action) store.State {
	before := s.Store.State().App.Theme
	after := s.Store.Dispatch(action)

	if after.App.Theme != before {
		if err := uc.themes.Set(ctx, s.ID, after.App.Theme); err != nil {
			uc.logger.Warn("Failed to save theme for session %s: %v", s.ID, err)
		}
	}
	return after
}

func (uc *consoleUseCase) applySavedTheme(ctx context.Context, s *session.Session) {
	theme, ok, err := uc.themes.Get(ctx, s.ID)
	if err != nil {
		uc.logger.Warn("Failed to load theme for session %s: %v", s.ID, err)
	}
	if !ok {
		theme = uc.settings.DefaultTheme
	}
	s.Store.Dispatch(store.SetTheme{Theme: theme})
}

func mockUser(userType entity.UserType) entity.User {
	if userType == entity.UserTypeAdmin {
		return entity.User{ID: "1", Name: "Admin User", Email: "admin@kochimetro.org", Role: entity.UserTypeAdmin}
	}
	return entity.User{ID: "1", Name: "Customer User", Email: "user@example.com", Role: entity.UserTypeUser}
}

// Login signs the session in as a fixed mock user. No credentials are
// checked.
func (uc *consoleUseCase) Login(ctx context.Context, sessionID string, userType entity.UserType) (*LoginResult, error) {
	if !userType.Valid() {
		return nil, fmt.Errorf("%w: unknown user type %q", ErrValidation, userType)
	}
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	user := mockUser(userType)
	uc.dispatch(ctx, s, store.LoginStart{})
	state := uc.dispatch(ctx, s, store.LoginSuccess{User: user, UserType: userType})

	s.Toasts.Show(entity.Toast{
		Type:    entity.NotificationSuccess,
		Title:   "Login Successful",
		Message: fmt.Sprintf("Welcome back, %s!", user.Name),
	})
	uc.logger.Info("Session %s logged in as %s", sessionID, userType)

	return &LoginResult{User: user, Redirect: route.LandingFor(userType), State: state}, nil
}

func (uc *consoleUseCase) Logout(ctx context.Context, sessionID string) (store.State, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return store.State{}, err
	}
	return uc.dispatch(ctx, s, store.Logout{}), nil
}

func (uc *consoleUseCase) ShowToast(sessionID string, t entity.Toast) (entity.Toast, error) {
	if t.Title == "" {
		return entity.Toast{}, fmt.Errorf("%w: toast title is required", ErrValidation)
	}
	if !t.Type.Valid() {
		return entity.Toast{}, fmt.Errorf("%w: toast type %q", ErrValidation, t.Type)
	}
	if t.Duration < 0 {
		return entity.Toast{}, fmt.Errorf("%w: toast duration must not be negative", ErrValidation)
	}
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return entity.Toast{}, err
	}
	return s.Toasts.Show(t), nil
}

func (uc *consoleUseCase) DismissToast(sessionID string, id int64) (bool, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return false, err
	}
	return s.Toasts.Dismiss(id), nil
}

func (uc *consoleUseCase) Toasts(sessionID string) ([]entity.Toast, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Toasts.Snapshot(), nil
}

func (uc *consoleUseCase) Theme(sessionID string) (entity.Theme, error) {
	state, err := uc.State(sessionID)
	if err != nil {
		return "", err
	}
	return state.App.Theme, nil
}

func (uc *consoleUseCase) SetTheme(ctx context.Context, sessionID string, theme entity.Theme) (entity.Theme, error) {
	if !theme.Valid() {
		return "", fmt.Errorf("%w: theme %q", ErrValidation, theme)
	}
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	return uc.dispatch(ctx, s, store.SetTheme{Theme: theme}).App.Theme, nil
}

func (uc *consoleUseCase) ToggleTheme(ctx context.Context, sessionID string) (entity.Theme, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	return uc.dispatch(ctx, s, store.ToggleTheme{}).App.Theme, nil
}

func (uc *consoleUseCase) ResolveRoute(sessionID, path string) (route.Resolution, error) {
	state, err := uc.State(sessionID)
	if err != nil {
		return route.Resolution{}, err
	}
	return route.Resolve(path, state.Auth), nil
}

func (uc *consoleUseCase) IsAdmin(sessionID string) (bool, error) {
	state, err := uc.State(sessionID)
	if err != nil {
		return false, err
	}
	return state.Auth.IsAdmin(), nil
}

func (uc *consoleUseCase) Dashboard(sessionID string) (store.Dashboard, error) {
	state, err := uc.State(sessionID)
	if err != nil {
		return store.Dashboard{}, err
	}
	return state.Dashboard(), nil
}

func (uc *consoleUseCase) SubmitFeedback(sessionID string, fb entity.Feedback) (*entity.Feedback, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	fb.Name = strings.TrimSpace(fb.Name)
	fb.Phone = strings.TrimSpace(fb.Phone)
	switch {
	case fb.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case fb.Phone == "":
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	case fb.Rating < 1 || fb.Rating > 5:
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	state := s.Store.State()
	for _, id := range []string{fb.FromStation, fb.ToStation} {
		if id == "" {
			continue
		}
		if _, ok := state.StationByID(id); !ok {
			return nil, fmt.Errorf("%w: unknown station %q", ErrValidation, id)
		}
	}

	fb.ID = uuid.New().String()
	fb.Date = uc.now().UTC()

	s.Toasts.Show(entity.Toast{
		Type:    entity.NotificationSuccess,
		Title:   "Thank you for your feedback!",
		Message: "Your response helps us improve Kochi Metro.",
	})
	uc.logger.Info("Feedback %s received in session %s (rating %d)", fb.ID, sessionID, fb.Rating)
	return &fb, nil
}

func (uc *consoleUseCase) BookTicket(sessionID string, req TicketRequest) (*entity.Ticket, error) {
	s, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	req.PassengerName = strings.TrimSpace(req.PassengerName)
	if req.PassengerName == "" {
		return nil, fmt.Errorf("%w: passenger name is required", ErrValidation)
	}
	if req.Passengers < 1 || req.Passengers > maxPassengers {
		return nil, fmt.Errorf("%w: passengers must be between 1 and %d", ErrValidation, maxPassengers)
	}
	if _, err := time.Parse("2006-01-02", req.JourneyDate); err != nil {
		return nil, fmt.Errorf("%w: journey date must be YYYY-MM-DD", ErrValidation)
	}
	if req.FromStation == req.ToStation {
		return nil, fmt.Errorf("%w: origin and destination must differ", ErrValidation)
	}

	state := s.Store.State()
	for _, id := range []string{req.FromStation, req.ToStation} {
		st, ok := state.StationByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown station %q", ErrValidation, id)
		}
		if st.Status != entity.StationOperational {
			return nil, fmt.Errorf("%w: station %s is under maintenance", ErrValidation, st.Name)
		}
	}

	id := uuid.New().String()
	ticket := &entity.Ticket{
		ID:            id,
		PassengerName: req.PassengerName,
		FromStation:   req.FromStation,
		ToStation:     req.ToStation,
		Fare:          uc.settings.TicketFare * float64(req.Passengers),
		Passengers:    req.Passengers,
		JourneyDate:   req.JourneyDate,
		QRCode:        "KMRL-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:12]),
		Status:        entity.TicketActive,
	}

	s.Toasts.Show(entity.Toast{
		Type:    entity.NotificationSuccess,
		Title:   "Ticket Booked",
		Message: fmt.Sprintf("%d passenger(s), fare ₹%.2f", ticket.Passengers, ticket.Fare),
	})
	uc.logger.Info("Ticket %s booked in session %s", ticket.ID, sessionID)
	return ticket, nil
}
