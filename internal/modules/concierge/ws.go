package concierge

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Any origin is fine for the demo; lock this down before exposing
	// the endpoint publicly.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsClientMessage struct {
	Type  string `json:"type"`
	Query string `json:"query,omitempty"`
}

type wsServerMessage struct {
	Type    string `json:"type"`
	Answer  string `json:"answer,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// HandleWebSocket runs a chat session with the concierge over a single
// WebSocket connection.
//
// Endpoint: GET /api/v1/concierge/ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	go pingLoop(conn)

	h.readLoop(c, conn)
}

func pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

func (h *Handler) readLoop(c *gin.Context, conn *websocket.Conn) {
	for {
		_, rawMsg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("concierge websocket error: %v", err)
			}
			return
		}

		var msg wsClientMessage
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			sendWSError(conn, "INVALID_JSON", "Failed to parse message")
			continue
		}

		switch msg.Type {
		case "ask":
			if msg.Query == "" {
				sendWSError(conn, "EMPTY_QUERY", "query is required")
				continue
			}
			answer := h.service.Ask(c.Request.Context(), msg.Query)
			conn.WriteJSON(wsServerMessage{Type: "answer", Answer: answer})
		case "ping":
			conn.WriteJSON(wsServerMessage{Type: "pong"})
		default:
			sendWSError(conn, "UNKNOWN_TYPE", "Unknown message type: "+msg.Type)
		}
	}
}

func sendWSError(conn *websocket.Conn, code, message string) {
	conn.WriteJSON(wsServerMessage{Type: "error", Code: code, Message: message})
}
