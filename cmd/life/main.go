//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/engines/accel"
	_ "lifegrid/pkg/engines/parallel"
	_ "lifegrid/pkg/engines/sequential"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "print registered engines and exit")
	flag.Parse()

	if *list {
		for _, name := range core.Engines() {
			fmt.Println(name)
		}
		return
	}

	engine, err := core.Open(cfg.Engine, cfg.EngineConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(engine, cfg.Cell, cfg.Seed)
	w, h := game.Size()

	ebiten.SetWindowTitle("lifegrid — " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	err = ebiten.RunGame(game)
	if cerr := engine.Close(); cerr != nil {
		log.Printf("close %s: %v", engine.Name(), cerr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
