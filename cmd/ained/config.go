package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neuromorph/ained/device"
	"github.com/neuromorph/ained/mmio"
)

// Config mirrors the optional YAML configuration file. Every field has
// a working default; an absent file means an all-default run.
type Config struct {
	Registers Window `yaml:"registers"`
	Memory    Window `yaml:"memory"`
	Sim       Sim    `yaml:"sim"`
}

// Window is one physical MMIO window.
type Window struct {
	Addr   uint64 `yaml:"addr"`
	Length int    `yaml:"length"`
}

// Sim configures hardware-free operation.
type Sim struct {
	Enabled bool `yaml:"enabled"`
	Dipoles int  `yaml:"dipoles"`
}

func defaultConfig() Config {
	return Config{
		Registers: Window{Addr: device.DefaultRegisterAddr, Length: device.DefaultRegisterLen},
		Memory:    Window{Addr: device.DefaultMemoryAddr, Length: device.DefaultMemoryLen},
		Sim:       Sim{Dipoles: 4},
	}
}

// loadConfig reads path over the defaults; an empty path keeps them.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// openDevice builds a handle from the config file and global flags.
// With --sim (or sim.enabled) it opens against an in-process simulator
// primed with the configured dipole count instead of /dev/mem.
func openDevice() (*device.Device, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if simMode || cfg.Sim.Enabled {
		// The simulator lives at the default memory map; window
		// overrides only apply to real hardware.
		sim := mmio.NewSim()
		if err := device.PrimeSim(sim, cfg.Sim.Dipoles); err != nil {
			return nil, fmt.Errorf("prime simulator: %w", err)
		}
		return device.Open(device.WithLogger(log), device.WithMapper(sim))
	}
	return device.Open(
		device.WithLogger(log),
		device.WithRegisterWindow(cfg.Registers.Addr, cfg.Registers.Length),
		device.WithMemoryWindow(cfg.Memory.Addr, cfg.Memory.Length),
	)
}
