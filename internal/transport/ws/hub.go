package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Watcher message types
const (
	MsgAnswerSubmitted  MessageType = "answer_submitted"
	MsgStatsInvalidated MessageType = "stats_invalidated"
	MsgSurveyClosed     MessageType = "survey_closed"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard watcher connections. Several admins can watch
// the same survey at once; every watcher of a survey gets every event.
type Hub struct {
	// surveyID -> connections
	watcherConns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	SurveyID string
	AdminID  string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SurveyID string
	Message  *Message
	// Close disconnects the survey's watchers after delivery
	Close bool
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watcherConns: make(map[string]map[*Connection]bool),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		broadcast:    make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watcherConns[conn.SurveyID] == nil {
				h.watcherConns[conn.SurveyID] = make(map[*Connection]bool)
			}
			h.watcherConns[conn.SurveyID][conn] = true
			log.Printf("Watcher %s connected to survey %s", conn.AdminID, conn.SurveyID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.watcherConns[conn.SurveyID]; ok {
				if watchers[conn] {
					delete(watchers, conn)
					close(conn.Send)
					log.Printf("Watcher %s disconnected from survey %s", conn.AdminID, conn.SurveyID)
				}
				if len(watchers) == 0 {
					delete(h.watcherConns, conn.SurveyID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			if msg.Message != nil {
				data, _ := json.Marshal(msg.Message)
				for conn := range h.watcherConns[msg.SurveyID] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			}
			if msg.Close {
				for conn := range h.watcherConns[msg.SurveyID] {
					close(conn.Send)
				}
				delete(h.watcherConns, msg.SurveyID)
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToWatchers sends a message to every watcher of the survey
// (implements service.Broadcaster)
func (h *Hub) BroadcastToWatchers(surveyID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SurveyID: surveyID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectSurvey notifies and drops the survey's watchers
// (implements service.Broadcaster)
func (h *Hub) DisconnectSurvey(surveyID string) {
	h.broadcast <- &BroadcastMessage{
		SurveyID: surveyID,
		Message: &Message{
			Type:    MsgSurveyClosed,
			Payload: json.RawMessage(`{"surveyId":"` + surveyID + `"}`),
		},
		Close: true,
	}
}
