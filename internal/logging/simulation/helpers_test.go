package simulation

import (
	"context"
	"testing"

	"sand-ca/internal/logging"
)

func capture(events *[]logging.Event) logging.Publisher {
	return logging.PublisherFunc(func(_ context.Context, e logging.Event) {
		*events = append(*events, e)
	})
}

func TestTickBudgetOverrunIsWarning(t *testing.T) {
	var events []logging.Event
	TickBudgetOverrun(context.Background(), capture(&events), 9, TickBudgetOverrunPayload{DurationMillis: 40, BudgetMillis: 16, Ratio: 2.5, Streak: 3}, nil)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Type != EventTickBudgetOverrun || e.Severity != logging.SeverityWarn || e.Tick != 9 || e.Source != logging.SourceWorld {
		t.Fatalf("unexpected event %+v", e)
	}
	if p, ok := e.Payload.(TickBudgetOverrunPayload); !ok || p.Streak != 3 {
		t.Fatalf("unexpected payload %#v", e.Payload)
	}
}

func TestSceneLoadedDefaultsSource(t *testing.T) {
	var events []logging.Event
	SceneLoaded(context.Background(), capture(&events), 0, "", SceneLoadedPayload{Scene: "forge", Seed: 7})
	if len(events) != 1 || events[0].Source != logging.SourceWorld || events[0].Category != logging.CategorySimulation {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestHelpersTolerateNilPublisher(t *testing.T) {
	TickBudgetOverrun(context.Background(), nil, 0, TickBudgetOverrunPayload{}, nil)
	SceneLoaded(context.Background(), nil, 0, "", SceneLoadedPayload{})
}
