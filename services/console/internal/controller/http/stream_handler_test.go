package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"metro-console/pkg/jwt"
	"metro-console/pkg/logger"
	"metro-console/pkg/middleware"
	"metro-console/services/console/internal/entity"
	"metro-console/services/console/internal/repo/preference"
	"metro-console/services/console/internal/session"
	"metro-console/services/console/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streamFixture struct {
	uc    usecase.ConsoleUseCase
	sid   string
	token string
	url   string
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()
	m := session.NewManager(nil)
	t.Cleanup(m.Close)
	uc := usecase.NewConsoleUseCase(m, preference.NewMemoryThemeRepository(), usecase.Settings{TicketFare: 30}, logger.Nop())
	jwtService := jwt.NewService("test-secret-key")
	handler := NewConsoleHandler(uc, jwtService, logger.Nop())

	router := setupTestRouter()
	router.GET("/ws", middleware.SessionMiddleware(jwtService), handler.HandleWebSocket)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	s, err := uc.StartSession(context.Background())
	require.NoError(t, err)
	token, err := jwtService.GenerateToken(s.ID)
	require.NoError(t, err)

	return &streamFixture{
		uc:    uc,
		sid:   s.ID,
		token: token,
		url:   "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token,
	}
}

type frame struct {
	Kind    string         `json:"kind"`
	Version uint64         `json:"version"`
	Cause   string         `json:"cause"`
	Toasts  []entity.Toast `json:"toasts"`
	State   struct {
		App struct {
			Theme entity.Theme `json:"theme"`
		} `json:"app"`
	} `json:"state"`
}

// readUntil skips frames of other kinds.
func readUntil(t *testing.T, conn *websocket.Conn, kind string) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var f frame
		require.NoError(t, conn.ReadJSON(&f))
		if f.Kind == kind {
			return f
		}
	}
}

func TestWebSocket_StreamsStateAndToasts(t *testing.T) {
	fx := newStreamFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(fx.url, nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readUntil(t, conn, "state")
	assert.Equal(t, entity.ThemeLight, initial.State.App.Theme)

	_, err = fx.uc.ToggleTheme(context.Background(), fx.sid)
	require.NoError(t, err)

	changed := readUntil(t, conn, "state")
	assert.Equal(t, entity.ThemeDark, changed.State.App.Theme)
	assert.Equal(t, "app/toggleTheme", changed.Cause)
	assert.Greater(t, changed.Version, initial.Version)

	_, err = fx.uc.ShowToast(fx.sid, entity.Toast{Type: entity.NotificationInfo, Title: "Hello"})
	require.NoError(t, err)

	for {
		f := readUntil(t, conn, "toasts")
		if len(f.Toasts) == 1 {
			assert.Equal(t, "Hello", f.Toasts[0].Title)
			break
		}
	}
}

func TestWebSocket_ClosesWhenSessionEnds(t *testing.T) {
	fx := newStreamFixture(t)

	conn, _, err := websocket.DefaultDialer.Dial(fx.url, nil)
	require.NoError(t, err)
	defer conn.Close()

	readUntil(t, conn, "state")
	require.NoError(t, fx.uc.EndSession(context.Background(), fx.sid))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			assert.False(t, isTimeout(err))
			return
		}
	}
}

func TestWebSocket_RejectsMissingToken(t *testing.T) {
	fx := newStreamFixture(t)

	url := strings.SplitN(fx.url, "?", 2)[0]
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	te, ok := err.(timeout)
	return ok && te.Timeout()
}
