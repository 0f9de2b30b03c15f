package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/services/events"
)

// ErrNotFound is returned when a config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int        `toml:"version"`
	Table   Table      `toml:"table"`
	UI      UISettings `toml:"ui"`
}

// Table describes the rows to pick from
type Table struct {
	Caption string   `toml:"caption,omitempty"`
	Columns []string `toml:"columns"`
	Rows    []Row    `toml:"rows"`
}

// Row is one table row as written in the config file
type Row struct {
	ID            string   `toml:"id"`
	Cells         []string `toml:"cells"`
	Drawer        string   `toml:"drawer,omitempty"`
	NotSelectable bool     `toml:"not_selectable,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Selectable       bool   `toml:"selectable"`
	WithoutSelectAll bool   `toml:"without_select_all"`
	Drawers          bool   `toml:"drawers"`
	CollapsedLabel   string `toml:"collapsed_label"`
	ExpandedLabel    string `toml:"expanded_label"`
	LogFile          string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      events.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		bus:      &events.NullBus{},
		filePath: filepath.Join(configDir, "tablegrip", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus events.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

// Load loads the configuration from the default location, falling back to
// the default config when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	cs.bus.Publish(domain.ConfigLoadedEvent{Path: path, Rows: len(cfg.Table.Rows)})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(domain.ConfigSavedEvent{Path: path})
	return nil
}

// Parse decodes a TOML document on top of the default UI settings.
// A document without a [table] section keeps the sample table.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	sample := cfg.Table
	cfg.Table = Table{}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Table.Rows) == 0 && len(cfg.Table.Columns) == 0 {
		cfg.Table = sample
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration errors that would break rendering
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Drawers && (c.UI.CollapsedLabel == "" || c.UI.ExpandedLabel == "") {
		errs = append(errs, errors.New("ui: drawers need both collapsed_label and expanded_label"))
	}
	seen := make(map[string]bool, len(c.Table.Rows))
	for i, row := range c.Table.Rows {
		if row.ID == "" {
			errs = append(errs, fmt.Errorf("table.rows[%d]: missing id", i))
			continue
		}
		if seen[row.ID] {
			errs = append(errs, fmt.Errorf("table.rows[%d]: duplicate id %q", i, row.ID))
		}
		seen[row.ID] = true
		if len(c.Table.Columns) > 0 && len(row.Cells) != len(c.Table.Columns) {
			errs = append(errs, fmt.Errorf("table.rows[%d] (%s): %d cells for %d columns",
				i, row.ID, len(row.Cells), len(c.Table.Columns)))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DomainTable converts the configured table to the domain model
func (c *Config) DomainTable() *domain.Table {
	table := &domain.Table{
		Caption: c.Table.Caption,
		Columns: append([]string(nil), c.Table.Columns...),
		Rows:    make([]domain.Row, 0, len(c.Table.Rows)),
	}
	for _, row := range c.Table.Rows {
		table.Rows = append(table.Rows, domain.Row{
			ID:            row.ID,
			Cells:         append([]string(nil), row.Cells...),
			Drawer:        row.Drawer,
			NotSelectable: row.NotSelectable,
		})
	}
	return table
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Table: Table{
			Caption: "Services",
			Columns: []string{"Name", "Owner", "Status"},
			Rows: []Row{
				{ID: "GH", Cells: []string{"GitHub", "platform", "healthy"}, Drawer: "Mirrors every repository hourly."},
				{ID: "MH", Cells: []string{"Mailhog", "qa", "degraded"}, Drawer: "SMTP on :1025, web UI on :8025."},
				{ID: "AT", Cells: []string{"Atlas", "data", "healthy"}},
				{ID: "AR", Cells: []string{"Archive", "ops", "retired"}, NotSelectable: true},
			},
		},
		UI: UISettings{
			Selectable:     true,
			Drawers:        true,
			CollapsedLabel: "show details",
			ExpandedLabel:  "hide details",
			LogFile:        "tablegrip.log",
		},
	}
}
