package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sand-ca/internal/app"
	"sand-ca/internal/sims/sand"
)

type job struct {
	scene string
	seed  int64
}

type summary struct {
	scene    string
	runs     int
	settle   []int
	burnOut  []int
	melt     []int
	firePeak int
	final    [sand.SpeciesCount]float64
}

func main() {
	scenes := flag.String("scenes", "", "comma-separated scenes (default: every non-empty scene)")
	seeds := flag.Int("seeds", 16, "seeds per scene")
	seedBase := flag.Int64("seed-base", 1, "first seed")
	ticks := flag.Int("ticks", 400, "ticks to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 72, "grid height")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	names := sceneList(*scenes)
	base := map[string]string{"w": strconv.Itoa(*width), "h": strconv.Itoa(*height)}
	for _, kv := range overrides {
		base[kv.Key] = kv.Value
	}

	var jobs []job
	for _, name := range names {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{scene: name, seed: *seedBase + int64(i)})
		}
	}
	fmt.Printf("Sweeping %d runs (%d scenes x %d seeds, %d workers, %d ticks)\n", len(jobs), len(names), *seeds, *workers, *ticks)

	start := time.Now()
	results := runAll(jobs, base, *ticks, max(*workers, 1))
	report(summarise(results), *ticks)
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

func sceneList(raw string) []string {
	if raw == "" {
		var out []string
		for _, name := range sand.SceneNames() {
			if name != sand.SceneEmpty {
				out = append(out, name)
			}
		}
		return out
	}
	known := make(map[string]bool)
	for _, name := range sand.SceneNames() {
		known[name] = true
	}
	var out []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if !known[name] {
			log.Fatalf("unknown scene %q (known: %s)", name, strings.Join(sand.SceneNames(), ", "))
		}
		out = append(out, name)
	}
	return out
}

func runAll(jobs []job, base map[string]string, ticks, workers int) []sand.RunResult {
	in := make(chan job)
	out := make(chan sand.RunResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				m := make(map[string]string, len(base)+2)
				for k, v := range base {
					m[k] = v
				}
				m["scene"] = j.scene
				m["seed"] = strconv.FormatInt(j.seed, 10)
				out <- sand.Run(sand.FromMap(m), ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	var all []sand.RunResult
	for res := range out {
		all = append(all, res)
	}
	return all
}

func summarise(results []sand.RunResult) []summary {
	byScene := make(map[string]*summary)
	for _, res := range results {
		s, ok := byScene[res.Scene]
		if !ok {
			s = &summary{scene: res.Scene}
			byScene[res.Scene] = s
		}
		s.runs++
		s.settle = append(s.settle, res.SettleTick)
		if res.BurnOutTick >= 0 {
			s.burnOut = append(s.burnOut, res.BurnOutTick)
		}
		if res.MeltTick >= 0 {
			s.melt = append(s.melt, res.MeltTick)
		}
		s.firePeak = max(s.firePeak, res.FirePeak)
		for i, n := range res.Final {
			s.final[i] += float64(n)
		}
	}

	out := make([]summary, 0, len(byScene))
	for _, s := range byScene {
		for i := range s.final {
			s.final[i] /= float64(s.runs)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].scene < out[j].scene })
	return out
}

func report(summaries []summary, ticks int) {
	for _, s := range summaries {
		fmt.Printf("\n%s (%d runs)\n", s.scene, s.runs)
		fmt.Printf("  settle   %s\n", describe(s.settle, s.runs))
		fmt.Printf("  burn-out %s\n", describe(s.burnOut, s.runs))
		fmt.Printf("  melt     %s\n", describe(s.melt, s.runs))
		fmt.Printf("  fire peak %d\n", s.firePeak)
		fmt.Printf("  mean census after %d ticks:", ticks)
		for _, sp := range sand.AllSpecies() {
			if sp == sand.Empty || s.final[sp] == 0 {
				continue
			}
			fmt.Printf(" %s=%.1f", sp, s.final[sp])
		}
		fmt.Println()
	}
}

// describe prints min/median/max of the recorded ticks and how many runs
// reached the event.
func describe(values []int, runs int) string {
	if len(values) == 0 {
		return fmt.Sprintf("never (0/%d)", runs)
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return fmt.Sprintf("min=%d median=%d max=%d (%d/%d)", sorted[0], sorted[len(sorted)/2], sorted[len(sorted)-1], len(values), runs)
}
