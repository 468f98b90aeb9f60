package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/repository/memory"
	internalWS "micro-automation-hub/internal/websocket"
	"micro-automation-hub/pkg/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveApp(t *testing.T, sessions *memory.WizardSessionRepository) *fiber.App {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := internalWS.NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	NewLiveHandler(hub, sessions, logger.NewNopLogger()).RegisterRoutes(app.Group("/api"))
	return app
}

func TestLiveHandlerRequiresUpgrade(t *testing.T) {
	app := newLiveApp(t, memory.NewWizardSessionRepository(time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/live/ws", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestLiveHandlerStatus(t *testing.T) {
	sessions := memory.NewWizardSessionRepository(time.Hour)
	sessions.Create("a", wizard.NewSession())
	sessions.Create("b", wizard.NewSession())
	sessions.Delete("b")
	app := newLiveApp(t, sessions)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/live/v1/status", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body serverutils.BaseResponse[map[string]int]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 0, body.Data["clients"])
	assert.Equal(t, 1, body.Data["wizard_sessions"])
}
