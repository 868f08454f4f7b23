package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/pathing"
)

var (
	ActiveInterpreterAPIConfig *InterpreterAPIConfig
	ActiveMeterCollectorConfig *MeterCollectorConfig
)

func DefaultInterpreterAPIConfig() *InterpreterAPIConfig {
	return &InterpreterAPIConfig{
		SerialDevice:  "/dev/ttyUSB0",
		Baudrate:      115200,
		ListenAddress: "0.0.0.0",
		ListenPort:    9039,
		TimeZone:      "Europe/Amsterdam",
	}
}

func DefaultMeterCollectorConfig() *MeterCollectorConfig {
	return &MeterCollectorConfig{
		InterpreterAPIHost: "localhost:9039",
		TLSEnabled:         false,
	}
}

func LoadInterpreterAPIConfig() error {
	cfg, err := LoadInterpreterAPIConfigFrom(pathing.GetConfigPath("interpreter_api.toml"))
	if err != nil {
		return err
	}
	ActiveInterpreterAPIConfig = cfg
	return nil
}

// LoadInterpreterAPIConfigFrom reads the config at path, writing the defaults there first if it does not exist.
func LoadInterpreterAPIConfigFrom(configPath string) (*InterpreterAPIConfig, error) {
	cfg := DefaultInterpreterAPIConfig()
	if err := loadOrCreate(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadMeterCollectorConfig() error {
	cfg, err := LoadMeterCollectorConfigFrom(pathing.GetConfigPath("meter_collector.toml"))
	if err != nil {
		return err
	}
	ActiveMeterCollectorConfig = cfg
	return nil
}

func LoadMeterCollectorConfigFrom(configPath string) (*MeterCollectorConfig, error) {
	cfg := DefaultMeterCollectorConfig()
	if err := loadOrCreate(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadOrCreate decodes configPath over the defaults in cfg. Keys missing from the file keep their default.
func loadOrCreate(configPath string, cfg any) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := pathing.EnsureDir(filepath.Dir(configPath)); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		cfgFile, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("create default config: %w", err)
		}
		defer cfgFile.Close()
		if err := toml.NewEncoder(cfgFile).Encode(cfg); err != nil {
			return fmt.Errorf("write default config %s: %w", configPath, err)
		}
		return nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}
	return nil
}

// ParserOptions turns the telegram settings into parser options.
func (c *InterpreterAPIConfig) ParserOptions() ([]dsmr.Option, error) {
	opts := []dsmr.Option{dsmr.WithRepairMangled(c.RepairMangled)}
	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("time_zone: %w", err)
		}
		opts = append(opts, dsmr.WithLocation(loc))
	}
	return opts, nil
}
