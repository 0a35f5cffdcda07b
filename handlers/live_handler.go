package handlers

import (
	"errors"
	"log"
	"net/http"

	"techquiz/models"
	"techquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Message is the typed envelope for both directions of the live channel.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type liveCommand struct {
	Type   string           `json:"type"`
	Option models.OptionKey `json:"option"`
}

// LiveHandler drives a quiz session over a websocket: the client sends
// select/advance commands and receives session_state messages. Exactly one
// learner drives a session, so each connection gets its own read loop.
type LiveHandler struct {
	sessionService *services.SessionService
}

func NewLiveHandler(sessionService *services.SessionService) *LiveHandler {
	return &LiveHandler{
		sessionService: sessionService,
	}
}

func (h *LiveHandler) ServeSession(c *gin.Context) {
	sessionID := c.Param("id")

	view, err := h.sessionService.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for session %s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("WebSocket connection established for session %s", sessionID)

	if err := conn.WriteJSON(Message{Type: "session_state", Payload: view}); err != nil {
		log.Printf("Failed to send initial state for session %s: %v", sessionID, err)
		return
	}

	for {
		var cmd liveCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error for session %s: %v", sessionID, err)
			}
			return
		}

		var view services.SessionView
		switch cmd.Type {
		case "select":
			view, err = h.sessionService.Select(sessionID, cmd.Option)
		case "advance":
			view, err = h.sessionService.Advance(sessionID)
		case "exit":
			if err := h.sessionService.End(sessionID); err != nil {
				log.Printf("Failed to end session %s: %v", sessionID, err)
			}
			return
		default:
			err = errors.New("unknown command type")
		}

		if err != nil {
			if writeErr := conn.WriteJSON(Message{Type: "error", Payload: gin.H{"message": err.Error()}}); writeErr != nil {
				return
			}
			if errors.Is(err, services.ErrSessionNotFound) {
				return
			}
			continue
		}

		if err := conn.WriteJSON(Message{Type: "session_state", Payload: view}); err != nil {
			log.Printf("Failed to send state for session %s: %v", sessionID, err)
			return
		}

		// The final state carries the result payload; the session is gone.
		if view.Status == services.SessionFinished {
			return
		}
	}
}
