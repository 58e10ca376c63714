package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-complaint-report/internal/pipeline"
	"go-complaint-report/internal/store"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	DBDSN       string `yaml:"db_dsn"`
	OutputDir   string `yaml:"output_dir"`
	MappingPath string `yaml:"mapping_path"` // optional YAML mapping table
	Timezone    string `yaml:"timezone"`

	ImageScale  int `yaml:"image_scale"`
	JPEGQuality int `yaml:"jpeg_quality"`

	AllowedSubtypes    []string          `yaml:"allowed_subtypes"`
	AllowedComplainant []string          `yaml:"allowed_complainants"`
	SubtypeFixes       map[string]string `yaml:"subtype_fixes"`
	WardFixes          map[string]string `yaml:"ward_fixes"`

	Location *time.Location `yaml:"-"` // computed from Timezone, not from YAML
}

// Load reads config.yaml (or CONFIG_PATH), applies env overrides and fills defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	return LoadFile(configPath)
}

// LoadFile is Load with an explicit path
func LoadFile(configPath string) (*Config, error) {
	var cfg Config
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading %s: %w", configPath, err)
	}

	envOverride(&cfg.LogLevel, "LOG_LEVEL")
	envOverride(&cfg.LogFormat, "LOG_FORMAT")
	envOverride(&cfg.DBDSN, "DB_DSN")
	envOverride(&cfg.OutputDir, "OUTPUT_DIR")
	envOverride(&cfg.MappingPath, "MAPPING_PATH")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverrideInt(&cfg.ImageScale, "IMAGE_SCALE")
	envOverrideInt(&cfg.JPEGQuality, "JPEG_QUALITY")
	envOverrideList(&cfg.AllowedSubtypes, "ALLOWED_SUBTYPES")
	envOverrideList(&cfg.AllowedComplainant, "ALLOWED_COMPLAINANTS")

	applyDefaults(&cfg)

	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", cfg.JPEGQuality)
	}
	if cfg.ImageScale < 1 {
		return nil, fmt.Errorf("image_scale must be at least 1, got %d", cfg.ImageScale)
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	cfg.Location = loc
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = store.DefaultDSN
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./exports"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if cfg.ImageScale == 0 {
		cfg.ImageScale = 2
	}
	if cfg.JPEGQuality == 0 {
		cfg.JPEGQuality = 95
	}

	defaults := pipeline.DefaultFilterRules()
	if len(cfg.AllowedSubtypes) == 0 {
		cfg.AllowedSubtypes = defaults.AllowedSubtypes
	}
	if len(cfg.AllowedComplainant) == 0 {
		cfg.AllowedComplainant = defaults.AllowedNames
	}
	if cfg.SubtypeFixes == nil {
		cfg.SubtypeFixes = defaults.SubtypeCorrections
	}
	if cfg.WardFixes == nil {
		cfg.WardFixes = defaults.WardCorrections
	}
}

// FilterRules returns the record filter configuration
func (c *Config) FilterRules() pipeline.FilterRules {
	return pipeline.FilterRules{
		AllowedSubtypes:    c.AllowedSubtypes,
		AllowedNames:       c.AllowedComplainant,
		SubtypeCorrections: c.SubtypeFixes,
		WardCorrections:    c.WardFixes,
	}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func envOverride(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*target = n
	}
}

func envOverrideList(target *[]string, key string) {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*target = out
}
