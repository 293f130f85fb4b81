package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds how long a slow monitor client can stall a send.
	writeWait = 10 * time.Second

	// readWait is generous: monitor clients only send occasional pings.
	readWait = 5 * time.Minute
)

// Conn wraps a gorilla connection with a write lock so an event-pump
// goroutine and the read loop's control replies can share one socket.
// gorilla/websocket supports only a single concurrent writer.
type Conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

// NewConn wraps an upgraded connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteTyped marshals and sends a typed event frame. Safe for concurrent use.
func (c *Conn) WriteTyped(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(v)
}

// WriteError sends an ErrorResponse frame.
func (c *Conn) WriteError(errMsg string) error {
	return c.WriteTyped(ErrorResponse{
		Event: EventError,
		Error: errMsg,
	})
}

// ReadJSON reads the next client frame into v, refreshing the read
// deadline. Reads stay on one goroutine and need no lock.
func (c *Conn) ReadJSON(v interface{}) error {
	c.ws.SetReadDeadline(time.Now().Add(readWait))
	return c.ws.ReadJSON(v)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}
