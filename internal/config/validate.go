package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDiscovery(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.ReposDir == "" {
		return errors.New("paths.repos_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.ReportsDir == "" {
		return errors.New("paths.reports_dir must be set")
	}
	if c.Paths.SkillsDir == "" {
		return errors.New("paths.skills_dir must be set")
	}
	// Recovery deletes partial output below output_dir; it must never point
	// at the source checkouts.
	if c.Paths.OutputDir == c.Paths.ReposDir {
		return errors.New("paths.output_dir must differ from paths.repos_dir")
	}
	return nil
}

func (c *Config) validateDiscovery() error {
	if c.Discovery.BatchLimit < 1 {
		return fmt.Errorf("discovery.batch_limit must be >= 1, got %d", c.Discovery.BatchLimit)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
