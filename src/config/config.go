package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
)

const (
	DefaultFloors            = 4
	DefaultCars              = 1
	DefaultArrivalRate       = 0.5
	DefaultDepartureProb     = 0.05
	DefaultEnergyUp          = 5.0
	DefaultEnergyDown        = 2.5
	DefaultEnergyPerOccupant = 0.5
	DefaultSteps             = 200
	DefaultStepInterval      = time.Second
	DefaultPolicy            = "nearest"
)

// Config holds every parameter of a simulation run. It is assembled once at
// startup and never reloaded mid-run.
type Config struct {
	Floors            int           `yaml:"Floors"`
	Cars              int           `yaml:"Cars"`
	ArrivalRate       float64       `yaml:"ArrivalRate"` // lambda with multiple cars, Bernoulli p with one
	DepartureProb     float64       `yaml:"DepartureProb"`
	EnergyUp          float64       `yaml:"EnergyUp"`
	EnergyDown        float64       `yaml:"EnergyDown"`
	EnergyPerOccupant float64       `yaml:"EnergyPerOccupant"`
	Steps             int           `yaml:"Steps"`
	StepInterval      time.Duration `yaml:"StepInterval"`
	Policy            string        `yaml:"Policy"`
	Seed              int64         `yaml:"Seed"`
}

func Default() Config {
	return Config{
		Floors:            DefaultFloors,
		Cars:              DefaultCars,
		ArrivalRate:       DefaultArrivalRate,
		DepartureProb:     DefaultDepartureProb,
		EnergyUp:          DefaultEnergyUp,
		EnergyDown:        DefaultEnergyDown,
		EnergyPerOccupant: DefaultEnergyPerOccupant,
		Steps:             DefaultSteps,
		StepInterval:      DefaultStepInterval,
		Policy:            DefaultPolicy,
	}
}

// LoadFile decodes a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from a .env file. Missing file is not an error;
// a present but malformed value is.
func (c *Config) ApplyEnv(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if v, ok := env["FLOORS"]; ok {
		if c.Floors, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("FLOORS: %w", err)
		}
	}
	if v, ok := env["CARS"]; ok {
		if c.Cars, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("CARS: %w", err)
		}
	}
	if v, ok := env["ARRIVAL_RATE"]; ok {
		if c.ArrivalRate, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("ARRIVAL_RATE: %w", err)
		}
	}
	if v, ok := env["DEPARTURE_PROB"]; ok {
		if c.DepartureProb, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("DEPARTURE_PROB: %w", err)
		}
	}
	if v, ok := env["STEPS"]; ok {
		if c.Steps, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("STEPS: %w", err)
		}
	}
	if v, ok := env["POLICY"]; ok {
		c.Policy = v
	}
	if v, ok := env["SEED"]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("SEED: %w", err)
		}
	}
	return nil
}

// Validate rejects degenerate configurations before the run starts.
func (c Config) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("floors must be at least 1, got %d", c.Floors)
	}
	if c.Cars < 1 {
		return fmt.Errorf("cars must be at least 1, got %d", c.Cars)
	}
	if c.Cars == 1 {
		// Repeated Bernoulli trials never terminate at p=1.
		if c.ArrivalRate < 0 || c.ArrivalRate >= 1 {
			return fmt.Errorf("arrival probability must be in [0,1), got %g", c.ArrivalRate)
		}
	} else if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate lambda must be positive, got %g", c.ArrivalRate)
	}
	if c.DepartureProb < 0 || c.DepartureProb > 1 {
		return fmt.Errorf("departure probability must be in [0,1], got %g", c.DepartureProb)
	}
	if c.EnergyUp < 0 || c.EnergyDown < 0 || c.EnergyPerOccupant < 0 {
		return fmt.Errorf("energy coefficients must be non-negative")
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.StepInterval < 0 {
		return fmt.Errorf("step interval must be non-negative, got %v", c.StepInterval)
	}
	switch c.Policy {
	case "random", "nearest", "cheapest":
	default:
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	return nil
}
