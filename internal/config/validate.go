package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return fmt.Errorf("paths.library_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.Bind) == "" {
		return fmt.Errorf("paths.bind must not be empty")
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if len(c.Library.VideoExtensions) == 0 {
		return fmt.Errorf("library.video_extensions must list at least one extension")
	}
	if len(c.Library.ThumbExtensions) == 0 {
		return fmt.Errorf("library.thumb_extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
