package command

import (
	"fmt"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/playback"
)

var banner = []string{
	`  _____ _                    _            _    `,
	` / ____| |                  | |          | |   `,
	`| (___ | |__   ___  _ __ ___| | __ _ _ __| | __`,
	` \___ \| '_ \ / _ \| '__/ _ \ |/ _' | '__| |/ /`,
	` ____) | | | | (_) | | |  __/ | (_| | |  |   < `,
	`|_____/|_| |_|\___/|_|  \___|_|\__,_|_|  |_|\_\`,
}

// PrintHelp writes the start-up banner and the command reference, with the
// current defaults filled in.
func PrintHelp(out playback.Printer, cfg config.Config) {
	p := func(format string, args ...any) {
		out.Println(fmt.Sprintf(format, args...))
	}

	for _, line := range banner {
		out.Println(line)
	}
	p("")
	p("---- Commands ----")
	p("")
	p("- p / pause")
	p("  Pauses (or resumes) the simulation")
	p("")
	p("- r / reset [animals=%d] [f=%d] [...]", cfg.WorldAnimals, cfg.WorldFoods)
	p("  Starts simulation from scratch with given optional")
	p("  parameters:")
	p("")
	p("  * a / animals (default=%d)", cfg.WorldAnimals)
	p("    number of animals")
	p("")
	p("  * f / foods (default=%d)", cfg.WorldFoods)
	p("    number of foods")
	p("")
	p("  * n / neurons (default=%d)", cfg.BrainNeurons)
	p("    number of brain neurons per each animal")
	p("")
	p("  * p / photoreceptors (default=%d)", cfg.EyeCells)
	p("    number of eye cells per each animal")
	p("")
	p("  Examples:")
	p("    reset animals=100 foods=100")
	p("    r a=100 f=100")
	p("    r p=3")
	p("")
	p("- (t)rain [how-many-generations]")
	p("  Fast-forwards one or many generations, allowing to")
	p("  observe the learning process faster.")
	p("")
	p("  Examples:")
	p("    train")
	p("    t 5")
	p("")
	p("---- Advanced Tips ----")
	p("")
	p("- `reset` can modify *all* of the parameters:")
	p("")
	p("  * r i:integer_param=123 f:float_param=123")
	p("  * r a=200 f=200 f:food_size=0.002")
	p("")
	p("  Parameter names:")
	for _, name := range config.Names() {
		v, _ := cfg.Get(name)
		p("    %s (default=%s)", name, v)
	}
	p("")
}
