package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"epconf/builder"
	"epconf/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	b        *builder.Builder
}

func NewServer(addr string, upgrader websocket.Upgrader, b *builder.Builder) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		b:        b,
	}
}

// serveWs handles websocket requests from the peer. Messages of one
// connection are answered one at a time, in arrival order.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := log.WithField("remote", conn.RemoteAddr().String())
	logger.Info("connection opened")
	hub := NewHub(s.b)
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("connection lost")
			}
			break
		}
		reply := hub.Handle(msg)
		if err := conn.WriteJSON(&reply); err != nil {
			logger.WithError(err).Warn("write reply")
			break
		}
	}
	logger.Info("connection closed")
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("listening")
	return http.ListenAndServe(s.addr, s.Handler())
}
