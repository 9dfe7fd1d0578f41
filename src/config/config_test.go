package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero floors", func(c *Config) { c.Floors = 0 }},
		{"zero cars", func(c *Config) { c.Cars = 0 }},
		{"negative arrival", func(c *Config) { c.ArrivalRate = -0.1 }},
		{"certain arrival single car", func(c *Config) { c.ArrivalRate = 1.0 }},
		{"zero lambda multi car", func(c *Config) { c.Cars = 2; c.ArrivalRate = 0 }},
		{"departure prob above one", func(c *Config) { c.DepartureProb = 1.5 }},
		{"negative energy", func(c *Config) { c.EnergyUp = -1 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"unknown policy", func(c *Config) { c.Policy = "sweep" }},
	}
	for _, tc := range cases {
		c := Default()
		tc.mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("Expected %s to be rejected", tc.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := "Floors: 8\nCars: 3\nArrivalRate: 1.5\nPolicy: random\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Floors != 8 || c.Cars != 3 || c.ArrivalRate != 1.5 || c.Policy != "random" {
		t.Errorf("Expected file values applied, got %+v", c)
	}
	// Untouched fields keep their defaults.
	if c.EnergyUp != DefaultEnergyUp {
		t.Errorf("Expected default energy, got %g", c.EnergyUp)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}

func TestApplyEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "FLOORS=10\nPOLICY=cheapest\nSEED=7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c := Default()
	if err := c.ApplyEnv(path); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if c.Floors != 10 || c.Policy != "cheapest" || c.Seed != 7 {
		t.Errorf("Expected env overrides applied, got %+v", c)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	c := Default()
	if err := c.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FLOORS=many\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	c := Default()
	if err := c.ApplyEnv(path); err == nil {
		t.Errorf("Expected error for non-numeric FLOORS")
	}
}
