package simulation

import (
	"context"

	"sand-ca/internal/logging"
)

const (
	// EventTickBudgetOverrun is emitted when a tick takes longer than the pacer's step.
	EventTickBudgetOverrun logging.EventType = "simulation.tick_budget_overrun"
	// EventSceneLoaded is emitted when the world is reset into a scene.
	EventSceneLoaded logging.EventType = "simulation.scene_loaded"
)

// TickBudgetOverrunPayload captures timing details for a tick budget breach.
type TickBudgetOverrunPayload struct {
	DurationMillis int64   `json:"durationMillis"`
	BudgetMillis   int64   `json:"budgetMillis"`
	Ratio          float64 `json:"ratio"`
	Streak         uint64  `json:"streak"`
}

// TickBudgetOverrun publishes a warning when a tick exceeds its budget.
func TickBudgetOverrun(ctx context.Context, pub logging.Publisher, tick uint64, payload TickBudgetOverrunPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTickBudgetOverrun,
		Tick:     tick,
		Severity: logging.SeverityWarn,
		Category: logging.CategorySimulation,
		Source:   logging.SourceWorld,
		Payload:  payload,
		Extra:    extra,
	})
}

type SceneLoadedPayload struct {
	Scene  string `json:"scene"`
	Seed   int64  `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func SceneLoaded(ctx context.Context, pub logging.Publisher, tick uint64, source string, payload SceneLoadedPayload) {
	if pub == nil {
		return
	}
	if source == "" {
		source = logging.SourceWorld
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSceneLoaded,
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Category: logging.CategorySimulation,
		Source:   source,
		Payload:  payload,
	})
}
