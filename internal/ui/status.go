package ui

import (
	"fmt"
	"strings"
)

// Status is the per-frame summary shown by the HUD.
type Status struct {
	Engine     string
	Cols, Rows int
	Generation int
	Population int
	Paused     bool
	TPS        float64
}

// Lines formats the status as HUD text rows.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s %dx%d", strings.ToUpper(s.Engine), s.Cols, s.Rows),
		fmt.Sprintf("gen %d  alive %d", s.Generation, s.Population),
		fmt.Sprintf("%s  %.1f tps", state, s.TPS),
	}
}
