package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"metro-console/pkg/jwt"
	"metro-console/pkg/logger"
	"metro-console/pkg/middleware"
	"metro-console/services/console/internal/entity"
	"metro-console/services/console/internal/route"
	"metro-console/services/console/internal/session"
	"metro-console/services/console/internal/store"
	"metro-console/services/console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConsoleHandler struct {
	consoleUseCase usecase.ConsoleUseCase
	jwtService     *jwt.Service
	logger         *logger.Logger
}

func NewConsoleHandler(consoleUseCase usecase.ConsoleUseCase, jwtService *jwt.Service, logger *logger.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		consoleUseCase: consoleUseCase,
		jwtService:     jwtService,
		logger:         logger,
	}
}

type DispatchRequest struct {
	Type    string          `json:"type" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

type LoginRequest struct {
	UserType entity.UserType `json:"userType" binding:"required"`
}

type ToastRequest struct {
	Type     entity.NotificationType `json:"type" binding:"required"`
	Title    string                  `json:"title" binding:"required"`
	Message  string                  `json:"message"`
	Duration int                     `json:"duration"`
}

type ThemeRequest struct {
	Theme entity.Theme `json:"theme" binding:"required"`
}

type FeedbackRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone" binding:"required"`
	FromStation string `json:"fromStation"`
	ToStation   string `json:"toStation"`
	JourneyTime string `json:"journeyTime"`
	Rating      int    `json:"rating" binding:"required"`
	Comments    string `json:"comments"`
}

type TicketRequest struct {
	PassengerName string `json:"passengerName" binding:"required"`
	FromStation   string `json:"fromStation" binding:"required"`
	ToStation     string `json:"toStation" binding:"required"`
	Passengers    int    `json:"passengers" binding:"required"`
	JourneyDate   string `json:"journeyDate" binding:"required"`
}

// fail maps usecase and store errors onto HTTP statuses.
func (h *ConsoleHandler) fail(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, store.ErrUnknownAction),
		errors.Is(err, store.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Failed to %s: %v", what, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + what})
	}
}

// CreateSession godoc
// @Summary      Open a console session
// @Description  Seeds a new state tree from the fixtures and returns the token that addresses it
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /sessions [post]
func (h *ConsoleHandler) CreateSession(c *gin.Context) {
	s, err := h.consoleUseCase.StartSession(c.Request.Context())
	if err != nil {
		h.fail(c, err, "start session")
		return
	}

	token, err := h.jwtService.GenerateToken(s.ID)
	if err != nil {
		h.logger.Error("Failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":      token,
		"session_id": s.ID,
		"state":      s.Store.State(),
	})
}

// EndSession godoc
// @Summary      Close the console session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions [delete]
func (h *ConsoleHandler) EndSession(c *gin.Context) {
	if err := h.consoleUseCase.EndSession(c.Request.Context(), c.GetString(middleware.SessionKey)); err != nil {
		h.fail(c, err, "end session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}

// ResetSession godoc
// @Summary      Reload the session from fixtures
// @Description  Every slice is re-seeded; the saved theme is kept
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /sessions/reset [post]
func (h *ConsoleHandler) ResetSession(c *gin.Context) {
	state, err := h.consoleUseCase.ResetSession(c.Request.Context(), c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "reset session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// GetState godoc
// @Summary      Read the whole state tree
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /state [get]
func (h *ConsoleHandler) GetState(c *gin.Context) {
	state, err := h.consoleUseCase.State(c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "read state")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetSlice godoc
// @Summary      Read one slice of the state tree
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Param        slice path string true "auth, app, trains, staff, schedules or stations"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /state/{slice} [get]
func (h *ConsoleHandler) GetSlice(c *gin.Context) {
	name := store.Slice(c.Param("slice"))
	if !name.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown slice"})
		return
	}

	state, err := h.consoleUseCase.State(c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "read state")
		return
	}
	slice, _ := state.Slice(name)
	c.JSON(http.StatusOK, slice)
}

// Dispatch godoc
// @Summary      Dispatch an action
// @Description  Applies a typed action such as trains/updateTrainStatus to the session store
// @Tags         state
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DispatchRequest true "Action"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /actions [post]
func (h *ConsoleHandler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.consoleUseCase.Dispatch(c.Request.Context(), c.GetString(middleware.SessionKey), req.Type, req.Payload)
	if err != nil {
		h.fail(c, err, "dispatch action")
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// ListActions godoc
// @Summary      List dispatchable action types
// @Tags         state
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /actions [get]
func (h *ConsoleHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"actions": store.ActionTypes()})
}

// Login godoc
// @Summary      Sign the session in
// @Description  Signs in as the mock admin or customer user; no credentials are checked
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LoginRequest true "User type"
// @Success      200  {object}  usecase.LoginResult
// @Failure      400  {object}  map[string]string
// @Router       /auth/login [post]
func (h *ConsoleHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.consoleUseCase.Login(c.Request.Context(), c.GetString(middleware.SessionKey), req.UserType)
	if err != nil {
		h.fail(c, err, "log in")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout godoc
// @Summary      Sign the session out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
func (h *ConsoleHandler) Logout(c *gin.Context) {
	state, err := h.consoleUseCase.Logout(c.Request.Context(), c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "log out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// ListToasts godoc
// @Summary      List visible toasts
// @Tags         toasts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /toasts [get]
func (h *ConsoleHandler) ListToasts(c *gin.Context) {
	toasts, err := h.consoleUseCase.Toasts(c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "list toasts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"toasts": toasts, "count": len(toasts)})
}

// ShowToast godoc
// @Summary      Show a toast
// @Description  The toast is dismissed automatically after duration milliseconds (default 5000)
// @Tags         toasts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ToastRequest true "Toast"
// @Success      201  {object}  entity.Toast
// @Failure      400  {object}  map[string]string
// @Router       /toasts [post]
func (h *ConsoleHandler) ShowToast(c *gin.Context) {
	var req ToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	toast, err := h.consoleUseCase.ShowToast(c.GetString(middleware.SessionKey), entity.Toast{
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Duration: req.Duration,
	})
	if err != nil {
		h.fail(c, err, "show toast")
		return
	}
	c.JSON(http.StatusCreated, toast)
}

// DismissToast godoc
// @Summary      Dismiss a toast
// @Tags         toasts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Toast ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /toasts/{id} [delete]
func (h *ConsoleHandler) DismissToast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toast ID"})
		return
	}

	dismissed, err := h.consoleUseCase.DismissToast(c.GetString(middleware.SessionKey), id)
	if err != nil {
		h.fail(c, err, "dismiss toast")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": dismissed})
}

// GetTheme godoc
// @Summary      Read the theme preference
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /preferences/theme [get]
func (h *ConsoleHandler) GetTheme(c *gin.Context) {
	theme, err := h.consoleUseCase.Theme(c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "read theme")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme godoc
// @Summary      Set the theme preference
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ThemeRequest true "light or dark"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /preferences/theme [put]
func (h *ConsoleHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := h.consoleUseCase.SetTheme(c.Request.Context(), c.GetString(middleware.SessionKey), req.Theme)
	if err != nil {
		h.fail(c, err, "set theme")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// ToggleTheme godoc
// @Summary      Toggle between light and dark
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /preferences/theme/toggle [post]
func (h *ConsoleHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.consoleUseCase.ToggleTheme(c.Request.Context(), c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "toggle theme")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// ListRoutes godoc
// @Summary      List console views
// @Tags         routes
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /routes [get]
func (h *ConsoleHandler) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": route.Table()})
}

// ResolveRoute godoc
// @Summary      Resolve a console path for this session
// @Description  Admin views redirect to the landing page unless the session is signed in as admin
// @Tags         routes
// @Produce      json
// @Security     BearerAuth
// @Param        path query string true "Console path"
// @Success      200  {object}  route.Resolution
// @Router       /routes/resolve [get]
func (h *ConsoleHandler) ResolveRoute(c *gin.Context) {
	res, err := h.consoleUseCase.ResolveRoute(c.GetString(middleware.SessionKey), c.DefaultQuery("path", route.Landing))
	if err != nil {
		h.fail(c, err, "resolve route")
		return
	}
	c.JSON(http.StatusOK, res)
}

// Dashboard godoc
// @Summary      Admin dashboard summary
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  store.Dashboard
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *ConsoleHandler) Dashboard(c *gin.Context) {
	d, err := h.consoleUseCase.Dashboard(c.GetString(middleware.SessionKey))
	if err != nil {
		h.fail(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}

// SubmitFeedback godoc
// @Summary      Submit journey feedback
// @Tags         portal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FeedbackRequest true "Feedback"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /feedback [post]
func (h *ConsoleHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.consoleUseCase.SubmitFeedback(c.GetString(middleware.SessionKey), entity.Feedback{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		JourneyTime: req.JourneyTime,
		Rating:      req.Rating,
		Comments:    req.Comments,
	})
	if err != nil {
		h.fail(c, err, "submit feedback")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback received", "feedback": fb})
}

// BookTicket godoc
// @Summary      Book a ticket
// @Tags         portal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TicketRequest true "Booking"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /tickets [post]
func (h *ConsoleHandler) BookTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.consoleUseCase.BookTicket(c.GetString(middleware.SessionKey), usecase.TicketRequest{
		PassengerName: req.PassengerName,
		FromStation:   req.FromStation,
		ToStation:     req.ToStation,
		Passengers:    req.Passengers,
		JourneyDate:   req.JourneyDate,
	})
	if err != nil {
		h.fail(c, err, "book ticket")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ticket booked", "ticket": ticket})
}
