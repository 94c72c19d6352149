package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"localpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestServeWSSendsCatchUpCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Customer{}))
	require.NoError(t, db.Create(&models.Customer{Name: "Ramesh"}).Error)

	hub := NewHub()
	r := gin.New()
	r.GET("/ws", ServeWS(hub, db, "http://localhost:5173"))

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "customerCount", event.Event)
	data, ok := event.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["count"])

	// the catch-up arrived, so the client is registered: broadcasts reach it
	hub.Broadcast("jobAdded", map[string]string{"jobId": "#tf1234"})

	_, payload, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "jobAdded", event.Event)
}
