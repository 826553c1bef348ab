// Package app wires a HAL to the calculator screen.
package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/tasks/calculator"

	"github.com/ternarybob/arbor"
)

type Config struct {
	Engine calc.Options
	// Log receives calculator events; nil selects the global logger.
	Log arbor.ILogger
}

// New builds the calculator on h and returns the per-frame step function.
func New(h hal.HAL, cfg Config) func() error {
	log := cfg.Log
	if log == nil {
		log = logger.GetLogger()
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("sparkcalc: boot " + buildinfo.Short())
	}

	task := calculator.New(h.Display(), h.Input(), h.Time(), log, cfg.Engine)
	return guard(h, task.Step)
}
