package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"sand-ca/internal/logging"
	"sand-ca/internal/logging/simulation"
	"sand-ca/internal/sims/sand"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []logging.Event
}

func (c *capturePublisher) Publish(_ context.Context, e logging.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *capturePublisher) ofType(t logging.EventType) []logging.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []logging.Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestHub(t *testing.T, cfg HubConfig) (*Hub, *capturePublisher) {
	t.Helper()
	wcfg := sand.DefaultConfig()
	wcfg.Width, wcfg.Height = 16, 12
	wcfg.Seed = 7
	pub := &capturePublisher{}
	cfg.Publisher = pub
	return NewHub(sand.NewWithConfig(wcfg), cfg), pub
}

func TestStepAppliesQueuedPaint(t *testing.T) {
	hub, _ := newTestHub(t, HubConfig{})
	if _, ok := hub.Enqueue(Command{Kind: commandPaint, X: 4, Y: 3, Radius: 1, Species: sand.Wall}); !ok {
		t.Fatalf("enqueue failed")
	}
	hub.Step()
	if got := hub.world.Counts()[sand.Wall]; got != 5 {
		t.Fatalf("expected 5 wall cells from a radius-1 brush, got %d", got)
	}
	if hub.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", hub.Tick())
	}
}

func TestEnqueueReportsTargetTickAndCapacity(t *testing.T) {
	hub, _ := newTestHub(t, HubConfig{MaxPendingCommands: 2})
	tick, ok := hub.Enqueue(Command{Kind: commandClear})
	if !ok || tick != 1 {
		t.Fatalf("expected first command for tick 1, got %d %v", tick, ok)
	}
	hub.Enqueue(Command{Kind: commandClear})
	if _, ok := hub.Enqueue(Command{Kind: commandClear}); ok {
		t.Fatalf("expected queue to be full")
	}
	hub.Step()
	if _, ok := hub.Enqueue(Command{Kind: commandClear}); !ok {
		t.Fatalf("queue should drain on step")
	}
}

func TestClearAndResetCommands(t *testing.T) {
	hub, pub := newTestHub(t, HubConfig{})
	hub.Enqueue(Command{Kind: commandPaint, X: 8, Y: 6, Radius: 2, Species: sand.Stone})
	hub.Step()
	if hub.world.Counts()[sand.Stone] == 0 {
		t.Fatalf("expected painted stone")
	}
	hub.Enqueue(Command{Kind: commandClear})
	hub.Step()
	if got := hub.world.Counts()[sand.Stone]; got != 0 {
		t.Fatalf("expected clear to remove stone, %d left", got)
	}

	hub.Enqueue(Command{Kind: commandReset, Source: "s1"})
	hub.Step()
	if hub.Tick() != 1 {
		t.Fatalf("reset should restart the tick counter, got %d", hub.Tick())
	}
	loaded := pub.ofType(simulation.EventSceneLoaded)
	if len(loaded) != 1 {
		t.Fatalf("expected one scene_loaded event, got %d", len(loaded))
	}
	payload := loaded[0].Payload.(simulation.SceneLoadedPayload)
	if payload.Seed != 7 || loaded[0].Source != "s1" || payload.Width != 16 {
		t.Fatalf("unexpected scene_loaded %+v from %s", payload, loaded[0].Source)
	}
}

func TestStepPublishesBudgetOverruns(t *testing.T) {
	hub, pub := newTestHub(t, HubConfig{TPS: 50})
	var clock time.Time
	hub.now = func() time.Time {
		clock = clock.Add(100 * time.Millisecond)
		return clock
	}
	hub.Step()
	hub.Step()

	events := pub.ofType(simulation.EventTickBudgetOverrun)
	if len(events) != 2 {
		t.Fatalf("expected 2 overrun events, got %d", len(events))
	}
	last := events[1].Payload.(simulation.TickBudgetOverrunPayload)
	if last.Streak != 2 || last.BudgetMillis != 20 || last.DurationMillis != 100 {
		t.Fatalf("unexpected payload %+v", last)
	}
	if hub.Diagnostics().Overruns != 2 {
		t.Fatalf("expected diagnostics to count overruns")
	}

	hub.now = time.Now
	hub.Step()
	if got := len(pub.ofType(simulation.EventTickBudgetOverrun)); got != 2 {
		t.Fatalf("fast tick should not publish, got %d events", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	hub, _ := newTestHub(t, HubConfig{TPS: 200})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Tick() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop")
	}
	if hub.Tick() < 3 {
		t.Fatalf("expected the loop to advance, tick=%d", hub.Tick())
	}
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		name   string
		msg    clientMessage
		kind   commandKind
		reason string
	}{
		{"paint by name", clientMessage{Type: TypePaint, Species: "Lava", Radius: 2}, commandPaint, ""},
		{"paint by id", clientMessage{Type: TypePaint, Species: "13"}, commandPaint, ""},
		{"unknown species", clientMessage{Type: TypePaint, Species: "plasma"}, 0, RejectUnknownSpecies},
		{"radius too large", clientMessage{Type: TypePaint, Species: "sand", Radius: 99}, 0, RejectBadRadius},
		{"negative radius", clientMessage{Type: TypePaint, Species: "sand", Radius: -1}, 0, RejectBadRadius},
		{"clear", clientMessage{Type: TypeClear}, commandClear, ""},
		{"reset", clientMessage{Type: TypeReset, Seed: 3}, commandReset, ""},
		{"unknown type", clientMessage{Type: "explode"}, 0, RejectUnknownType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, reason := parseCommand(tc.msg, 32)
			if reason != tc.reason {
				t.Fatalf("reason = %q, want %q", reason, tc.reason)
			}
			if reason == "" && cmd.Kind != tc.kind {
				t.Fatalf("kind = %d, want %d", cmd.Kind, tc.kind)
			}
		})
	}
}
