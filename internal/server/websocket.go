package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/view"
	"github.com/muurk/debloater/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Renders buffered per client before it counts as slow
	sendBuffer = 32
)

// Message types on the wire.
const (
	TypeRender = "render"
	TypeEvent  = "event"
	TypeError  = "error"
)

// Event names that carry arguments instead of naming a node.
const (
	EventSetQuery   = "set_query"
	EventMoveCursor = "move_cursor"
)

// Outgoing is a server to client message.
type Outgoing struct {
	Type  string     `json:"type"`
	Tree  *view.Node `json:"tree,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Incoming is a client to server message. Name is a node ID from the last
// render, or one of the argument-carrying event names.
type Incoming struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Query string `json:"query,omitempty"`
	Delta int    `json:"delta,omitempty"`
}

var errUnknownEvent = errors.New("unknown event")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	id         string
	remoteAddr string
	conn       *websocket.Conn
	send       chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

// enqueue reports false when the client's buffer is full.
func (c *client) enqueue(payload []byte) bool {
	select {
	case <-c.closed:
		return true
	default:
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.Close()
	})
}

func encodeRender(tree view.Node) ([]byte, error) {
	return json.Marshal(Outgoing{Type: TypeRender, Tree: &tree})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := &client{
		id:         uuid.New().String(),
		remoteAddr: r.RemoteAddr,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		closed:     make(chan struct{}),
	}
	logging.LogConnection(c.id, c.remoteAddr, "websocket_upgraded")

	// The snapshot is taken and queued under the client lock so no broadcast
	// can overtake it.
	s.mu.Lock()
	payload, err := encodeRender(s.loop.Tree())
	if err != nil {
		s.mu.Unlock()
		logging.Error("Failed to encode display tree", zap.Error(err))
		c.close()
		return
	}
	c.enqueue(payload)
	s.clients[c.id] = c
	s.mu.Unlock()

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.writePump(c)
	}()
	go func() {
		defer s.wg.Done()
		s.readPump(c)
	}()
}

func (s *Server) readPump(c *client) {
	defer func() {
		s.remove(c)
		c.close()
		logging.LogConnection(c.id, c.remoteAddr, "websocket_closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Incoming
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				c.reply(fmt.Errorf("malformed message: %w", err))
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Connection closed unexpectedly",
					zap.String("client_id", c.id),
					zap.Error(err),
				)
			}
			return
		}

		logging.Debug("Client event",
			zap.String("client_id", c.id),
			zap.String("name", msg.Name),
		)

		e, err := s.resolve(msg)
		if err != nil {
			c.reply(err)
			continue
		}
		if !s.loop.Dispatch(e) {
			return
		}
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.closed:
			return

		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// reply sends an error message to the client.
func (c *client) reply(err error) {
	payload, _ := json.Marshal(Outgoing{Type: TypeError, Error: err.Error()})
	if !c.enqueue(payload) {
		c.close()
	}
}

// resolve maps a client message to a controller event. Node names are looked
// up in the latest tree so a client can only press what is on screen.
func (s *Server) resolve(msg Incoming) (app.Event, error) {
	if msg.Type != TypeEvent {
		return nil, fmt.Errorf("unsupported message type %q", msg.Type)
	}

	switch msg.Name {
	case EventSetQuery:
		return app.ListScreenEvent{Msg: list.SetQuery{Query: msg.Query}}, nil
	case EventMoveCursor:
		return app.ListScreenEvent{Msg: list.MoveCursor{Delta: msg.Delta}}, nil
	}

	node, ok := s.loop.Tree().Find(msg.Name)
	if !ok || node.OnPress == nil {
		return nil, fmt.Errorf("%w: %q", errUnknownEvent, msg.Name)
	}
	e, ok := node.OnPress.(app.Event)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownEvent, msg.Name)
	}
	return e, nil
}
