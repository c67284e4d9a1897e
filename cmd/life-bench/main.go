package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/engines/accel"
	_ "lifegrid/pkg/engines/parallel"
	"lifegrid/pkg/engines/sequential"
)

type runResult struct {
	engine     string
	elapsed    time.Duration
	gens       int
	population int
	mismatch   int
	err        error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 200, "generations to compute per engine")
	verify := flag.Bool("verify", true, "compare every generation against the sequential engine")
	only := flag.String("engines", "", "comma-separated engines to run (default: all registered)")
	flag.Parse()

	names := core.Engines()
	if *only != "" {
		names = strings.Split(*only, ",")
	}
	ecfg := cfg.EngineConfig()
	if err := ecfg.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("grid %dx%d, cell %.2f, seed %d, %d workers, %d generations",
		ecfg.Cols, ecfg.Rows, ecfg.CellSize, ecfg.Seed, ecfg.EffectiveWorkers(), *gens)

	var results []runResult
	for _, name := range names {
		res := run(strings.TrimSpace(name), ecfg, *gens, *verify)
		if res.err != nil {
			log.Printf("%s: %v", res.engine, res.err)
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed < results[j].elapsed })

	fmt.Printf("%-18s %12s %12s %10s %s\n", "engine", "total", "per gen", "alive", "verify")
	for _, res := range results {
		status := "ok"
		switch {
		case res.err != nil:
			status = "error"
		case res.mismatch > 0:
			status = fmt.Sprintf("mismatch at gen %d", res.mismatch)
		case !*verify || res.engine == sequential.Name:
			status = "-"
		}
		per := time.Duration(0)
		if res.gens > 0 {
			per = res.elapsed / time.Duration(res.gens)
		}
		fmt.Printf("%-18s %12s %12s %10d %s\n", res.engine, res.elapsed.Round(time.Microsecond), per, res.population, status)
	}
}

func run(name string, cfg core.Config, gens int, verify bool) runResult {
	res := runResult{engine: name}
	engine, err := core.Open(name, cfg)
	if err != nil {
		res.err = err
		return res
	}
	defer engine.Close()

	var oracle core.Engine
	if verify && name != sequential.Name {
		oracle, err = core.Open(sequential.Name, cfg)
		if err != nil {
			res.err = err
			return res
		}
		defer oracle.Close()
	}

	for gen := 1; gen <= gens; gen++ {
		start := time.Now()
		pts, err := engine.Advance()
		res.elapsed += time.Since(start)
		if err != nil {
			res.err = fmt.Errorf("generation %d: %w", gen, err)
			return res
		}
		res.gens = gen
		res.population = pts.Count
		if oracle == nil {
			continue
		}
		want, err := oracle.Advance()
		if err != nil {
			res.err = fmt.Errorf("oracle generation %d: %w", gen, err)
			return res
		}
		if res.mismatch == 0 && !core.SameSet(want, pts) {
			res.mismatch = gen
			log.Printf("%s: generation %d has %d alive, sequential has %d", name, gen, pts.Count, want.Count)
		}
	}
	return res
}
