package stream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"sand-ca/internal/logging"
	"sand-ca/internal/logging/session"
	"sand-ca/internal/sims/sand"
)

const maxMessageSize = 4096

type HandlerConfig struct {
	Publisher logging.Publisher
}

// Handler upgrades HTTP requests to websocket sessions on a Hub.
type Handler struct {
	hub      *Hub
	pub      logging.Publisher
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, cfg HandlerConfig) *Handler {
	pub := cfg.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	return &Handler{
		hub: hub,
		pub: pub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// NewHTTPHandler serves /ws, /health and /diagnostics.
func NewHTTPHandler(hub *Hub, cfg HandlerConfig) http.Handler {
	handler := NewHandler(hub, cfg)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.Handle)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		data, err := json.Marshal(hub.Diagnostics())
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
	return mux
}

// Handle runs one session: hello, then a frame per tick, while client
// commands are read and queued on the hub.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ctx := context.Background()
	sub, err := h.hub.Subscribe(conn)
	if err != nil {
		conn.Close()
		return
	}
	session.SessionOpened(ctx, h.pub, h.hub.Tick(), sub.id, session.OpenedPayload{
		RemoteAddr: r.RemoteAddr,
		Sessions:   h.hub.Sessions(),
	})

	reason := h.readLoop(ctx, sub)

	h.hub.Unsubscribe(sub)
	session.SessionClosed(ctx, h.pub, h.hub.Tick(), sub.id, session.ClosedPayload{
		Reason:   reason,
		Sessions: h.hub.Sessions(),
	})
}

func (h *Handler) readLoop(ctx context.Context, sub *subscriber) string {
	sub.conn.SetReadLimit(maxMessageSize)
	for {
		_, payload, err := sub.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "client closed"
			}
			return err.Error()
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			session.CommandRejected(ctx, h.pub, h.hub.Tick(), sub.id, session.CommandRejectedPayload{
				Reason: "malformed: " + err.Error(),
			})
			continue
		}
		seq := uint64(0)
		if msg.Seq != nil {
			seq = *msg.Seq
		}

		cmd, reason := parseCommand(msg, h.hub.cfg.MaxRadius)
		var tick uint64
		if reason == "" {
			cmd.Source = sub.id
			var ok bool
			if tick, ok = h.hub.Enqueue(cmd); !ok {
				reason = RejectQueueFull
			}
		}

		if reason != "" {
			session.CommandRejected(ctx, h.pub, h.hub.Tick(), sub.id, session.CommandRejectedPayload{
				Command: msg.Type,
				Seq:     seq,
				Reason:  reason,
			})
			if err := sub.sendJSON(commandRejectMessage{Type: TypeCommandReject, Seq: seq, Reason: reason}); err != nil {
				return replyError(err)
			}
			continue
		}
		if seq > 0 {
			if err := sub.sendJSON(commandAckMessage{Type: TypeCommandAck, Seq: seq, Tick: tick}); err != nil {
				return replyError(err)
			}
		}
	}
}

func replyError(err error) string {
	return "reply failed: " + err.Error()
}

// parseCommand validates msg and returns the command, or a reject reason.
func parseCommand(msg clientMessage, maxRadius int) (Command, string) {
	switch msg.Type {
	case TypePaint:
		species, ok := sand.ParseSpecies(msg.Species)
		if !ok {
			return Command{}, RejectUnknownSpecies
		}
		if msg.Radius < 0 || msg.Radius > maxRadius {
			return Command{}, RejectBadRadius
		}
		return Command{Kind: commandPaint, X: msg.X, Y: msg.Y, Radius: msg.Radius, Species: species}, ""
	case TypeClear:
		return Command{Kind: commandClear}, ""
	case TypeReset:
		return Command{Kind: commandReset, Seed: msg.Seed}, ""
	default:
		return Command{}, RejectUnknownType
	}
}
