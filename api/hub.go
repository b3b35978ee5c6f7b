package api

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hixion/snake-game/snake"
)

// Hub tracks the games being played in this process so that spectators can
// watch them.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewHub() *Hub {
	return &Hub{sessions: map[string]*Session{}}
}

// Register adds a game under a fresh id. The returned session is meant to be
// handed to the game's driver as a publisher.
func (h *Hub) Register() *Session {
	s := &Session{
		id:      uuid.New().String(),
		started: time.Now().UTC(),
		subs:    map[chan Frame]struct{}{},
	}
	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()
	return s
}

// Remove drops a game and disconnects its spectators.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if ok {
		s.close()
	}
}

func (h *Hub) Get(id string) (*Session, bool) {
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	return s, ok
}

// List returns a summary of every game, oldest first.
func (h *Hub) List() []GameSummary {
	h.mu.RLock()
	out := make([]GameSummary, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s.Summary())
	}
	h.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// subscriberBuffer is the number of frames a slow spectator may fall behind
// before frames are dropped for it.
const subscriberBuffer = 16

// Session holds the latest frame of one game and fans frames out to
// spectators.
type Session struct {
	id      string
	started time.Time

	mu     sync.RWMutex
	seq    uint64
	last   Frame
	subs   map[chan Frame]struct{}
	closed bool
}

func (s *Session) ID() string {
	return s.id
}

// Publish records a frame. It never blocks the caller.
func (s *Session) Publish(snap snake.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.seq++
	s.last = newFrame(s.seq, snap)
	for ch := range s.subs {
		select {
		case ch <- s.last:
		default:
		}
	}
}

// Last returns the most recent frame, and false if nothing was published yet.
func (s *Session) Last() (Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.seq > 0
}

func (s *Session) Summary() GameSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GameSummary{
		ID:      s.id,
		Started: s.started,
		State:   s.last.State,
		Length:  s.last.Length,
		Seq:     s.seq,
	}
}

// Subscribe returns a channel of future frames and a function that cancels
// the subscription. The channel is closed when either is called or the
// session is removed.
func (s *Session) Subscribe() (<-chan Frame, func()) {
	ch := make(chan Frame, subscriberBuffer)
	s.mu.Lock()
	if s.closed {
		close(ch)
		s.mu.Unlock()
		return ch, func() {}
	}
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			if _, ok := s.subs[ch]; ok {
				delete(s.subs, ch)
				close(ch)
			}
			s.mu.Unlock()
		})
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for ch := range s.subs {
		close(ch)
	}
	s.subs = map[chan Frame]struct{}{}
}
