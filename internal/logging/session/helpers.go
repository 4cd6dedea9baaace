package session

import (
	"context"

	"sand-ca/internal/logging"
)

const (
	EventOpened          logging.EventType = "session.opened"
	EventClosed          logging.EventType = "session.closed"
	EventCommandRejected logging.EventType = "session.command_rejected"
)

type OpenedPayload struct {
	RemoteAddr string `json:"remoteAddr"`
	Sessions   int    `json:"sessions"`
}

type ClosedPayload struct {
	Reason   string `json:"reason,omitempty"`
	Sessions int    `json:"sessions"`
}

// CommandRejectedPayload records why a client command was refused.
type CommandRejectedPayload struct {
	Command string `json:"command"`
	Seq     uint64 `json:"seq,omitempty"`
	Reason  string `json:"reason"`
}

func SessionOpened(ctx context.Context, pub logging.Publisher, tick uint64, id string, payload OpenedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventOpened,
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Source:   id,
		Payload:  payload,
	})
}

func SessionClosed(ctx context.Context, pub logging.Publisher, tick uint64, id string, payload ClosedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventClosed,
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Source:   id,
		Payload:  payload,
	})
}

// CommandRejected publishes a warning when a client sends a command the host
// cannot apply.
func CommandRejected(ctx context.Context, pub logging.Publisher, tick uint64, id string, payload CommandRejectedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventCommandRejected,
		Tick:     tick,
		Severity: logging.SeverityWarn,
		Source:   id,
		Payload:  payload,
	})
}

func publish(ctx context.Context, pub logging.Publisher, event logging.Event) {
	if pub == nil {
		return
	}
	event.Category = logging.CategorySession
	pub.Publish(ctx, event)
}
