package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"metro-console/pkg/middleware"
	"metro-console/services/console/internal/entity"
	"metro-console/services/console/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const writeWait = 10 * time.Second

type stateFrame struct {
	Kind    string      `json:"kind"`
	Version uint64      `json:"version"`
	Cause   string      `json:"cause,omitempty"`
	State   store.State `json:"state"`
}

type toastFrame struct {
	Kind   string         `json:"kind"`
	Toasts []entity.Toast `json:"toasts"`
}

// HandleWebSocket godoc
// @Summary      Stream state and toast changes
// @Description  Sends a state frame on connect and after every change to the watched slices, and a toasts frame whenever the visible toast list changes
// @Tags         stream
// @Security     BearerAuth
// @Param        token query string true "Session token"
// @Param        slices query string false "Comma separated slice names to watch"
// @Router       /ws [get]
func (h *ConsoleHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var slices []store.Slice
	if raw := c.Query("slices"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			sl := store.Slice(strings.TrimSpace(name))
			if !sl.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown slice " + string(sl)})
				return
			}
			slices = append(slices, sl)
		}
	}

	s, err := h.consoleUseCase.Session(sessionID)
	if err != nil {
		h.fail(c, err, "open stream")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket connected for session %s", sessionID)

	stateSub := s.Store.Subscribe(slices...)
	defer stateSub.Unsubscribe()
	toastSub := s.Toasts.Subscribe()
	defer toastSub.Unsubscribe()

	var writeMu sync.Mutex
	write := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(v)
	}

	current := s.Store.Snapshot()
	if err := write(stateFrame{Kind: "state", Version: current.Version, State: current.State}); err != nil {
		h.logger.Warn("Failed to write initial state: %v", err)
		return
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case snap, ok := <-stateSub.C:
				if !ok {
					_ = conn.Close()
					return
				}
				if snap.Version <= current.Version {
					continue
				}
				if err := write(stateFrame{Kind: "state", Version: snap.Version, Cause: snap.Cause, State: snap.State}); err != nil {
					h.logger.Warn("Failed to write WebSocket message: %v", err)
					return
				}
			case toasts, ok := <-toastSub.C:
				if !ok {
					_ = conn.Close()
					return
				}
				if err := write(toastFrame{Kind: "toasts", Toasts: toasts}); err != nil {
					h.logger.Warn("Failed to write WebSocket message: %v", err)
					return
				}
			}
		}
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if messageType == websocket.CloseMessage {
			break
		}
	}

	close(done)
	wg.Wait()
	h.logger.Info("WebSocket disconnected for session %s", sessionID)
}
