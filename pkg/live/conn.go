package live

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// frameMessage is one outbound websocket message.
type frameMessage struct {
	kind int
	data []byte
}

// conn is a single websocket client.
type conn struct {
	server *Server
	ws     *websocket.Conn
	remote string

	// outbound is the frame queue drained by writeLoop.
	outbound chan frameMessage

	closeOnce sync.Once
	closed    chan struct{}
}

func newConn(s *Server, ws *websocket.Conn, remote string) *conn {
	return &conn{
		server:   s,
		ws:       ws,
		remote:   remote,
		outbound: make(chan frameMessage, s.config.SendBuffer),
		closed:   make(chan struct{}),
	}
}

// send queues a message for delivery. Returns false if the queue is full
// or the connection is closed.
func (c *conn) send(m frameMessage) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.outbound <- m:
		return true
	default:
		return false
	}
}

// writeLoop drains the outbound queue onto the socket.
func (c *conn) writeLoop() {
	defer c.close()

	for {
		select {
		case m := <-c.outbound:
			c.ws.SetWriteDeadline(time.Now().Add(c.server.config.WriteTimeout))
			if err := c.ws.WriteMessage(m.kind, m.data); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					c.server.log.Error("write error", "remote", c.remote, "error", err)
				}
				return
			}
		case <-c.closed:
			return
		}
	}
}

// readLoop consumes inbound messages. The live view is one-directional;
// reads only serve to detect the client going away.
func (c *conn) readLoop() {
	defer c.close()

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// close tears the connection down exactly once.
func (c *conn) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.ws.Close()
		c.server.remove(c)
	})
}
