package realtime

import (
	"net/http"
	"time"

	"localpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

// ServeWS upgrades the connection, registers the client on the hub and pushes
// the current customer count as a one-time catch-up message.
func ServeWS(hub *Hub, db *gorm.DB, allowedOrigin string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			zlog.Error().Err(err).Msg("websocket upgrade failed")
			return
		}

		client := &Client{
			ID:   uuid.NewString(),
			Send: make(chan []byte, sendBufferSize),
		}
		hub.Register(client)
		zlog.Info().Str("client", client.ID).Msg("socket connected")

		var count int64
		if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
			zlog.Error().Err(err).Msg("socket customer count")
		} else {
			hub.SendTo(client, "customerCount", gin.H{"count": count})
		}

		go writePump(conn, client)
		go readPump(conn, hub, client)
	}
}

// readPump discards inbound frames; clients have no commands beyond
// connect/disconnect.
func readPump(conn *websocket.Conn, hub *Hub, client *Client) {
	defer func() {
		hub.Unregister(client)
		conn.Close()
		zlog.Info().Str("client", client.ID).Msg("socket disconnected")
	}()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	for {
		select {
		case payload, ok := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
