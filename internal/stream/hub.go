package stream

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"
	"sand-ca/internal/logging/simulation"
	"sand-ca/internal/sims/sand"
)

type commandKind uint8

const (
	commandPaint commandKind = iota
	commandClear
	commandReset
)

// Command is a client request applied by the tick goroutine before the next
// tick.
type Command struct {
	Kind    commandKind
	X, Y    int
	Radius  int
	Species sand.Species
	Seed    int64
	Source  string
}

// HubConfig tunes the tick loop and command intake.
type HubConfig struct {
	TPS                int
	MaxPendingCommands int
	MaxRadius          int
	Publisher          logging.Publisher
}

func DefaultHubConfig() HubConfig {
	return HubConfig{TPS: 30, MaxPendingCommands: 1024, MaxRadius: 32}
}

// Hub owns one World and every connected session. Only the goroutine running
// Run (or calling Step) touches the World.
type Hub struct {
	world *sand.World
	cfg   HubConfig
	pub   logging.Publisher
	pacer *core.FixedStep
	scene string
	now   func() time.Time

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	pending     []Command
	nextID      uint64

	tick          atomic.Uint64
	overruns      atomic.Uint64
	overrunStreak uint64
}

// NewHub wraps world. The hub takes ownership; callers must not touch world
// afterwards.
func NewHub(world *sand.World, cfg HubConfig) *Hub {
	def := DefaultHubConfig()
	if cfg.TPS <= 0 {
		cfg.TPS = def.TPS
	}
	if cfg.MaxPendingCommands <= 0 {
		cfg.MaxPendingCommands = def.MaxPendingCommands
	}
	if cfg.MaxRadius <= 0 {
		cfg.MaxRadius = def.MaxRadius
	}
	pub := cfg.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	h := &Hub{
		world:       world,
		cfg:         cfg,
		pub:         pub,
		pacer:       core.NewFixedStep(cfg.TPS),
		scene:       world.Config().Scene,
		now:         time.Now,
		subscribers: make(map[*subscriber]struct{}),
	}
	h.tick.Store(world.Ticks())
	return h
}

// Run advances the world at the configured rate until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.pacer.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for h.pacer.ShouldStep() {
				h.Step()
			}
		}
	}
}

// Step applies queued commands, advances the world one tick and broadcasts
// the new buffer.
func (h *Hub) Step() {
	ctx := context.Background()
	start := h.now()
	for _, cmd := range h.drainCommands() {
		h.apply(ctx, cmd)
	}
	h.world.Tick()
	tick := h.world.Ticks()
	h.tick.Store(tick)
	h.checkBudget(ctx, tick, h.now().Sub(start))

	frame := make([]byte, len(h.world.Buffer()))
	copy(frame, h.world.Buffer())
	h.broadcast(frame)
}

func (h *Hub) drainCommands() []Command {
	h.mu.Lock()
	defer h.mu.Unlock()
	cmds := h.pending
	h.pending = nil
	return cmds
}

func (h *Hub) apply(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case commandPaint:
		h.world.Paint(cmd.X, cmd.Y, cmd.Radius, uint8(cmd.Species))
	case commandClear:
		h.world.Clear()
	case commandReset:
		h.world.Reset(cmd.Seed)
		seed := cmd.Seed
		if seed == 0 {
			seed = h.world.Config().Seed
		}
		simulation.SceneLoaded(ctx, h.pub, h.world.Ticks(), cmd.Source, simulation.SceneLoadedPayload{
			Scene:  h.scene,
			Seed:   seed,
			Width:  h.world.Width(),
			Height: h.world.Height(),
		})
	}
}

func (h *Hub) checkBudget(ctx context.Context, tick uint64, elapsed time.Duration) {
	budget := h.pacer.Interval()
	if elapsed <= budget {
		h.overrunStreak = 0
		return
	}
	h.overrunStreak++
	h.overruns.Add(1)
	simulation.TickBudgetOverrun(ctx, h.pub, tick, simulation.TickBudgetOverrunPayload{
		DurationMillis: elapsed.Milliseconds(),
		BudgetMillis:   budget.Milliseconds(),
		Ratio:          float64(elapsed) / float64(budget),
		Streak:         h.overrunStreak,
	}, nil)
}

// Enqueue queues cmd for the next tick. It returns the tick that will include
// the command, or false when the queue is full.
func (h *Hub) Enqueue(cmd Command) (uint64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) >= h.cfg.MaxPendingCommands {
		return 0, false
	}
	h.pending = append(h.pending, cmd)
	return h.tick.Load() + 1, true
}

// Subscribe registers conn and queues the hello message ahead of any frame.
func (h *Hub) Subscribe(conn *websocket.Conn) (*subscriber, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	sub := newSubscriber(fmt.Sprintf("s%d", h.nextID), conn)
	hello := helloMessage{
		Ver:     ProtocolVersion,
		Type:    TypeHello,
		Width:   h.world.Width(),
		Height:  h.world.Height(),
		Stride:  sand.CellStride,
		Tick:    h.tick.Load(),
		Scene:   h.scene,
		Species: speciesNames(),
	}
	if err := sub.sendJSON(hello); err != nil {
		sub.close()
		return nil, err
	}
	h.subscribers[sub] = struct{}{}
	go sub.writeLoop()
	return sub, nil
}

// Unsubscribe removes sub and closes its connection.
func (h *Hub) Unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
	sub.close()
}

// Sessions reports the number of connected subscribers.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Tick returns the most recently completed tick.
func (h *Hub) Tick() uint64 { return h.tick.Load() }

func (h *Hub) broadcast(frame []byte) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()
	for _, sub := range subs {
		sub.sendFrame(frame)
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subscribers
	h.subscribers = make(map[*subscriber]struct{})
	h.mu.Unlock()
	for sub := range subs {
		sub.close()
	}
}

// Diagnostics is the payload served on /diagnostics.
type Diagnostics struct {
	Status   string `json:"status"`
	Tick     uint64 `json:"tick"`
	Sessions int    `json:"sessions"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Scene    string `json:"scene"`
	TPS      int    `json:"tps"`
	Overruns uint64 `json:"overruns"`
}

func (h *Hub) Diagnostics() Diagnostics {
	return Diagnostics{
		Status:   "ok",
		Tick:     h.tick.Load(),
		Sessions: h.Sessions(),
		Width:    h.world.Width(),
		Height:   h.world.Height(),
		Scene:    h.scene,
		TPS:      h.cfg.TPS,
		Overruns: h.overruns.Load(),
	}
}

func speciesNames() []string {
	all := sand.AllSpecies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}
