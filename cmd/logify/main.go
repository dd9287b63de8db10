// Command logify demonstrates the logging library: console output with
// optional color, an optional caller-owned log file, level configuration
// from a YAML file, a .env file, or the LOG_LEVEL environment variable,
// and serialized emission through a shared mutex.
//
// Usage:
//
//	logify [-config logger.yaml]
//
// Example logger.yaml:
//
//	level: warn
//	quiet: false
//	file: ./app.log
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sivaosorg/logify"
)

// fileConfig is the optional YAML logger configuration.
type fileConfig struct {
	Level string `yaml:"level"`
	Quiet bool   `yaml:"quiet"`
	File  string `yaml:"file"`
}

// loadConfig reads and validates a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects level names the library would refuse at runtime.
func (c *fileConfig) validate() error {
	if c.Level == "" {
		return nil
	}
	if _, err := logify.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "optional YAML logger config (level, quiet, file)")
	flag.Parse()

	// A .env in the working directory may carry LOG_LEVEL; a missing file is
	// not an error.
	_ = godotenv.Load()

	// Environment first, so an explicit config file wins over it below.
	logify.InitFromEnv()
	logify.SetLocker(&sync.Mutex{})

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.Level != "" {
			logify.SetLevelByName(cfg.Level)
		}
		logify.SetQuiet(cfg.Quiet)
		if cfg.File != "" {
			// The file handle belongs to us, not the logger.
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			logify.SetFile(f)
		}
	}

	logify.Infof("logging at %s", logify.GetLevelName())

	logify.Tracef("resolving upstream %s", "cache-01")
	logify.Debugf("starting %d workers", 4)
	logify.Infof("hello %s", "world")
	logify.Warnf("disk usage at %d%%", 87)
	logify.Errorf("oops: %v", "something happened")
	logify.Fatalf("giving up after %d retries", 3)
}
