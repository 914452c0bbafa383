package ws

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/recap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server, websocket uçlarını API'den ayrı bir portta sunar. Fiber
// fasthttp üzerine kurulu olduğundan gorilla upgrade'i net/http ile yapılır.
type Server struct {
	hub    *Hub
	engine *recap.Engine
	logger *zap.Logger
}

func NewServer(hub *Hub, engine *recap.Engine, logger *zap.Logger) *Server {
	return &Server{
		hub:    hub,
		engine: engine,
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/events/", s.handleEventSocket)
	mux.HandleFunc("/ws/recap/", s.handleRecapSocket)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("websocket server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// handleEventSocket, istemciyi etkinlik odasına bağlar. Bağlantı boyunca
// feed.refresh ve like.toggle duyuruları bu kanaldan akar.
func (s *Server) handleEventSocket(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimPrefix(r.URL.Path, "/ws/events/")
	if eventID == "" {
		http.Error(w, "event id is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(s.hub, conn, eventID)
	s.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// handleRecapSocket, açık bir recap oturumunun karelerini akıtır. Oturum
// kapandığında kanal kapanır ve bağlantı da kapatılır.
func (s *Server) handleRecapSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimPrefix(r.URL.Path, "/ws/recap/")
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	session, err := s.engine.Get(sessionID)
	if err != nil {
		http.Error(w, "recap session not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	go s.streamFrames(conn, session)
}

func (s *Server) streamFrames(conn *websocket.Conn, session *recap.Session) {
	defer conn.Close()

	// İstemciden veri beklenmez; okuma döngüsü yalnızca kopuşu algılar ve
	// oturumu kapatır ki zamanlayıcı ile ses tutamacı sahipsiz kalmasın.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.engine.Close(session.ID)
				return
			}
		}
	}()

	for frame := range session.Frames() {
		data, err := json.Marshal(frame)
		if err != nil {
			s.logger.Error("failed to marshal recap frame", zap.Error(err))
			continue
		}

		msg := Message{
			Type:      MsgRecapFrame,
			EventID:   frame.EventID,
			Data:      data,
			Timestamp: time.Now(),
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.engine.Close(session.ID)
			return
		}
	}

	// Kanal kapandı: oturum Close ile sonlandı, istemciye kapanış çerçevesi gönderilir.
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "recap closed"))
}
