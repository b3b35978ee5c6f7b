package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/hixion/snake-game/snake"
)

// Router serves read-only views of the games registered with h.
func Router(h *Hub) http.Handler {
	r := chi.NewRouter()
	hd := &handler{
		hub: h,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	r.Get("/", hd.Info)
	r.Get("/games", hd.List)
	r.Get("/games/{id}", hd.Frame)
	r.Get("/games/{id}/stream", hd.Stream)
	return r
}

const writeTimeout = 5 * time.Second

type handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func (*handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, &InfoResponse{
		APIVersion:   "1",
		Width:        snake.Width,
		Height:       snake.Height,
		CellSize:     CellSize,
		WindowWidth:  snake.Width * CellSize,
		WindowHeight: snake.Height * CellSize,
	})
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.hub.List())
}

func (h *handler) Frame(w http.ResponseWriter, r *http.Request) {
	s, ok := h.hub.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	frame, ok := s.Last()
	if !ok {
		http.Error(w, "game not started", http.StatusConflict)
		return
	}
	writeJSON(w, &frame)
}

func (h *handler) Stream(w http.ResponseWriter, r *http.Request) {
	s, ok := h.hub.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("failed to upgrade stream: %v", err)
		return
	}
	defer conn.Close()

	frames, cancel := s.Subscribe()
	defer cancel()

	// Spectators never send anything; reading only notices the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var sent uint64
	if frame, ok := s.Last(); ok {
		if err := writeFrame(conn, &frame); err != nil {
			log.Printf("failed to write frame: %v", err)
			return
		}
		sent = frame.Seq
	}
	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case frame, ok := <-frames:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "game removed"),
					time.Now().Add(writeTimeout))
				return
			}
			if frame.Seq <= sent {
				continue
			}
			if err := writeFrame(conn, &frame); err != nil {
				log.Printf("failed to write frame: %v", err)
				return
			}
			sent = frame.Seq
		}
	}
}

func writeFrame(conn *websocket.Conn, frame *Frame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
