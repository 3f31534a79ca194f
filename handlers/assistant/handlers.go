// Package assistant serves the public chat widget: a plain request/reply
// endpoint and a websocket for the conversational view.
package assistant

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"orgportal/backend/services/assistant"
)

type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "model"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatHandler answers one message. The gateway is fail-soft, so this always
// returns 200 with some reply text.
func ChatHandler(client *assistant.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		reply := client.GenerateReply(r.Context(), req.Message)
		json.NewEncoder(w).Encode(ChatMessage{
			Role:      "model",
			Text:      reply,
			Timestamp: time.Now(),
		})
	}
}

// HandleWebSocket runs the widget's conversation loop: read a user message,
// generate a reply, write it back. One connection per visitor, no fan-out.
func HandleWebSocket(client *assistant.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("assistant ws: upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var msg ChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("assistant ws: read: %v", err)
				}
				return
			}
			if msg.Text == "" {
				continue
			}

			reply := client.GenerateReply(r.Context(), msg.Text)
			out := ChatMessage{Role: "model", Text: reply, Timestamp: time.Now()}
			if err := conn.WriteJSON(out); err != nil {
				log.Printf("assistant ws: write: %v", err)
				return
			}
		}
	}
}
