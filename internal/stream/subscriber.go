package stream

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait   = 10 * time.Second
	outboxDepth = 8
)

var errSessionClosed = errors.New("session closed")

type outbound struct {
	kind int
	data []byte
}

// subscriber serialises writes for one connection through a single writer
// goroutine. Frames are dropped when the client falls behind; control
// replies wait up to writeWait for space.
type subscriber struct {
	id        string
	conn      *websocket.Conn
	out       chan outbound
	done      chan struct{}
	closeOnce sync.Once
	dropped   atomic.Uint64
}

func newSubscriber(id string, conn *websocket.Conn) *subscriber {
	return &subscriber{
		id:   id,
		conn: conn,
		out:  make(chan outbound, outboxDepth),
		done: make(chan struct{}),
	}
}

func (s *subscriber) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.out:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(msg.kind, msg.data); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *subscriber) sendFrame(frame []byte) {
	select {
	case s.out <- outbound{kind: websocket.BinaryMessage, data: frame}:
	case <-s.done:
	default:
		s.dropped.Add(1)
	}
}

func (s *subscriber) sendJSON(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	timer := time.NewTimer(writeWait)
	defer timer.Stop()
	select {
	case s.out <- outbound{kind: websocket.TextMessage, data: data}:
		return nil
	case <-s.done:
		return errSessionClosed
	case <-timer.C:
		return errors.New("outbox full")
	}
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}
