package backgroundlib

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendAuto    = "auto"
	BackendSwaymsg = "swaymsg"
	BackendX11     = "x11"
)

const configName = "sway-backgrounds"

type Config struct {
	BasePath string
	Backend  string
	Mode     string
	// Go time layout naming a sub-directory to choose from first, lowercased.
	// Off unless set.
	DayDirectoryFormat string
	// A Go duration, empty means no timeout
	Timeout        string
	LogFile        string
	SwaymsgCommand string
	XwallpaperPath string
	Display        string

	timeout time.Duration
}

// The per-user config file, it does not need to exist
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName, "config.toml"), nil
}

// LoadConfig reads path, or the default config file when path is empty.
// Only an explicitly named file has to exist.
func LoadConfig(path string) (*Config, error) {
	c := &Config{}

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultConfigFile()
		if err != nil {
			// No $HOME, run on defaults
			path = ""
		}
	}

	if path != "" {
		_, err := os.Stat(path)
		if err == nil {
			if _, err = toml.DecodeFile(path, c); err != nil {
				return nil, fmt.Errorf("Error decoding config [%s]: %w", path, err)
			}
		} else if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("Unexpected error %s when opening [%s]", err, path)
		}
	}

	return c, nil
}

// Validate fills in defaults and rejects bad values.
// Call it after any overrides have been applied.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("No base path given and %s", err)
		}
		c.BasePath = filepath.Join(home, "Pictures", "wallpapers")
	}

	if c.Backend == "" {
		c.Backend = BackendAuto
	}
	switch c.Backend {
	case BackendAuto, BackendSwaymsg, BackendX11:
	default:
		return fmt.Errorf("Unknown backend [%s]", c.Backend)
	}

	if c.Mode == "" {
		c.Mode = string(Fill)
	}
	if _, err := ParseScaleMode(c.Mode); err != nil {
		return err
	}

	c.timeout = 0
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("Invalid Timeout [%s]: %w", c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("Timeout must not be negative")
		}
		c.timeout = d
	}

	return nil
}

func (c *Config) ScaleMode() ScaleMode {
	return ScaleMode(c.Mode)
}

func (c *Config) TimeoutDuration() time.Duration {
	return c.timeout
}

// DaySubPath is the preferred sub-directory for the given time.
func (c *Config) DaySubPath(now time.Time) string {
	if c.DayDirectoryFormat == "" {
		return ""
	}
	return dayDirectory(now, c.DayDirectoryFormat)
}

// NewCompositor builds the configured backend. "auto" uses X11 only outside
// of a sway session with $DISPLAY set.
func (c *Config) NewCompositor() (Compositor, error) {
	backend := c.Backend
	if backend == BackendAuto || backend == "" {
		backend = detectBackend(c)
	}

	switch backend {
	case BackendSwaymsg:
		s := NewSwaymsg()
		if c.SwaymsgCommand != "" {
			s.Command = c.SwaymsgCommand
		}
		return s, nil
	case BackendX11:
		x := NewX11(c.Display)
		if c.XwallpaperPath != "" {
			x.Command = c.XwallpaperPath
		}
		return x, nil
	}
	return nil, fmt.Errorf("Unknown backend [%s]", backend)
}

func detectBackend(c *Config) string {
	if os.Getenv("SWAYSOCK") != "" {
		return BackendSwaymsg
	}
	if c.Display != "" || os.Getenv("DISPLAY") != "" {
		return BackendX11
	}
	return BackendSwaymsg
}
