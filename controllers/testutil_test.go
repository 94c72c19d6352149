package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localpro-backend/config"
	"localpro-backend/models"
	"localpro-backend/realtime"
	"localpro-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           "8080",
		FrontendOrigin: "http://localhost:5173",
		JWTSecret:      "test-secret",
		JWTExpiryHours: 24,
		AdminEmail:     "pkgupta93100@gmail.com",
		AdminPassword:  "prashant123",
		UploadDir:      t.TempDir(),
	}
}

// newTestServer wires the router against an in-memory store and registers a
// hub subscriber so tests can assert the events every mutation broadcasts.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config, *realtime.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	cfg := newTestConfig(t)
	hub := realtime.NewHub()
	subscriber := &realtime.Client{ID: "test-subscriber", Send: make(chan []byte, 64)}
	hub.Register(subscriber)
	router := routes.SetupRouter(cfg, db, hub, nil)
	return router, db, cfg, subscriber
}

// nextEvent pops the oldest broadcast the subscriber received.
func nextEvent(t *testing.T, subscriber *realtime.Client) realtime.Event {
	t.Helper()
	select {
	case payload := <-subscriber.Send:
		var event realtime.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast event")
		return realtime.Event{}
	}
}

func drainEvents(subscriber *realtime.Client) {
	for {
		select {
		case <-subscriber.Send:
		default:
			return
		}
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createCustomer(t *testing.T, router *gin.Engine, body map[string]interface{}) models.Customer {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/customers", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var customer models.Customer
	decodeBody(t, w, &customer)
	return customer
}
