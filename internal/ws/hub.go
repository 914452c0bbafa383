// Package ws, etkinlik odalarına bildirim yayınlayan websocket hub'ı.
// Başarılı bir fotoğraf gönderimi ve like değişimleri feed.refresh,
// recap oturumları ise recap.frame mesajları yayar.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/models"
)

// Message types
const (
	MsgFeedRefresh = "feed.refresh"
	MsgLikeToggle  = "like.toggle"
	MsgRecapFrame  = "recap.frame"
)

type Message struct {
	Type      string          `json:"type"`
	EventID   string          `json:"event_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Client, tek bir websocket bağlantısını temsil eder.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	eventID string
}

func NewClient(hub *Hub, conn *websocket.Conn, eventID string) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 64),
		eventID: eventID,
	}
}

// Hub, etkinlik kimliğine göre gruplanan istemcileri ve yayın kanalını tutar.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]map[*Client]bool // eventID -> clients
	broadcast chan *Message
	register  chan *Client
	unregister chan *Client
	logger    *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// NotifyFeedRefresh, etkinlik odasındaki tüm istemcilere feed'in
// yenilenmesi gerektiğini duyurur.
func (h *Hub) NotifyFeedRefresh(eventID string) {
	h.Publish(&Message{Type: MsgFeedRefresh, EventID: eventID, Timestamp: time.Now()})
}

// NotifyLikeToggle, beğeni değişimini sonucuyla birlikte duyurur; istemci
// feed'i yeniden çekmeden sayacı yerinde günceller.
func (h *Hub) NotifyLikeToggle(eventID string, result *models.ToggleLikeResponse) {
	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed to marshal like toggle payload", zap.Error(err))
		return
	}
	h.Publish(&Message{Type: MsgLikeToggle, EventID: eventID, Data: data, Timestamp: time.Now()})
}

func (h *Hub) Publish(msg *Message) {
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("hub broadcast channel full, dropping message",
			zap.String("type", msg.Type), zap.String("event_id", msg.EventID))
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.eventID] == nil {
				h.clients[client.eventID] = make(map[*Client]bool)
			}
			h.clients[client.eventID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.eventID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.eventID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			payload, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("failed to marshal hub message", zap.Error(err))
				continue
			}

			h.mu.Lock()
			for client := range h.clients[message.EventID] {
				select {
				case client.send <- payload:
				default:
					close(client.send)
					delete(h.clients[message.EventID], client)
				}
			}
			h.mu.Unlock()
		}
	}
}
