package main

import (
	"flag"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"liftsim/src/config"
	"liftsim/src/dispatch"
	"liftsim/src/logger"
	"liftsim/src/pace"
	"liftsim/src/sim"
	"liftsim/src/view"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "env overrides file")
	floors := flag.Int("floors", config.DefaultFloors, "number of floors")
	cars := flag.Int("cars", config.DefaultCars, "number of elevator cars")
	rate := flag.Float64("rate", config.DefaultArrivalRate, "arrival rate (lambda, or p with one car)")
	steps := flag.Int("steps", config.DefaultSteps, "number of time steps to run")
	policy := flag.String("policy", config.DefaultPolicy, "dispatch policy: random, nearest or cheapest")
	seed := flag.Int64("seed", 0, "random seed")
	interval := flag.Duration("interval", config.DefaultStepInterval, "delay between steps")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.GetConfigured(level)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatal().Err(err).Msg("loading config file")
		}
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		log.Fatal().Err(err).Msg("applying env overrides")
	}
	// Explicit flags override both file and env values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.Floors = *floors
		case "cars":
			cfg.Cars = *cars
		case "rate":
			cfg.ArrivalRate = *rate
		case "steps":
			cfg.Steps = *steps
		case "policy":
			cfg.Policy = *policy
		case "seed":
			cfg.Seed = *seed
		case "interval":
			cfg.StepInterval = *interval
		}
	})

	building, err := sim.NewBuilding(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	ctrl, err := dispatch.New(cfg.Policy, cfg.Cars)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	src := sim.NewSource(cfg.Seed)

	log.Info().
		Int("floors", cfg.Floors).
		Int("cars", cfg.Cars).
		Str("policy", cfg.Policy).
		Int64("seed", cfg.Seed).
		Msg("starting simulation")

	tick := make(chan struct{})
	action := make(chan pace.Action)
	go pace.Run(cfg.StepInterval, action, tick)
	defer close(action)

	keys, err := keyboard.GetKeys(8)
	if err != nil {
		log.Debug().Err(err).Msg("keyboard unavailable, running without interactive controls")
		keys = nil
	} else {
		defer keyboard.Close()
	}

	paused := false
	view.Clear(os.Stdout)

run:
	for step := 0; step < cfg.Steps; {
		select {
		case <-tick:
			building.Step(ctrl, src)
			view.Clear(os.Stdout)
			view.Render(os.Stdout, building.Snapshot())
			step++
		case ev := <-keys:
			switch {
			case ev.Key == keyboard.KeyEsc || ev.Rune == 'q':
				log.Info().Int("step", step).Msg("interrupted")
				break run
			case ev.Key == keyboard.KeySpace:
				paused = !paused
				if paused {
					action <- pace.Stop
				} else {
					action <- pace.Start
				}
			}
		}
	}

	log.Info().
		Float64("avgWaitTime", building.AvgWaitTime()).
		Float64("avgEnergy", building.AvgEnergy()).
		Msg("simulation complete")
}
