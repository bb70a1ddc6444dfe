package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	// origins are enforced by the CORS middleware and API keys
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// GET /v1/sessions/{id}/events
// Streams stage, completion and theme events of one session as JSON frames.
func (r *Router) handleEvents(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if _, err := r.svc.Session(req.Context(), id); err != nil {
		r.wrap(func(http.ResponseWriter, *http.Request) error { return err })(w, req)
		return
	}
	if r.hub == nil {
		http.Error(w, "event stream disabled", http.StatusNotImplemented)
		return
	}

	// subscribe before the handshake completes so no event after it is missed
	sub := r.hub.Subscribe(id)
	defer sub.Close()

	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Error("websocket upgrade failed", "session", id, "error", err)
		return
	}
	defer conn.Close()
	r.logger.Info("websocket connection established", "session", id, "remote_addr", req.RemoteAddr)

	// Reader: handles pongs and notices when the client goes away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-req.Context().Done():
			return
		case e, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				r.logger.Debug("websocket write failed", "session", id, "error", err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
