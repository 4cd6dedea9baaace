package main

import (
	"testing"

	"sand-ca/internal/sims/sand"
)

func TestRunAllCoversEveryJob(t *testing.T) {
	jobs := []job{{scene: sand.SceneBox, seed: 1}, {scene: sand.SceneBox, seed: 2}, {scene: sand.SceneCampfire, seed: 1}}
	base := map[string]string{"w": "32", "h": "24"}
	results := runAll(jobs, base, 10, 2)
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}

	summaries := summarise(results)
	if len(summaries) != 2 || summaries[0].scene != sand.SceneBox || summaries[1].scene != sand.SceneCampfire {
		t.Fatalf("unexpected summaries %+v", summaries)
	}
	if summaries[0].runs != 2 || summaries[0].final[sand.Wall] == 0 {
		t.Fatalf("box summary missing wall census: %+v", summaries[0])
	}
}

func TestDescribe(t *testing.T) {
	if got := describe(nil, 4); got != "never (0/4)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := describe([]int{30, 10, 20}, 4); got != "min=10 median=20 max=30 (3/4)" {
		t.Fatalf("unexpected %q", got)
	}
}
