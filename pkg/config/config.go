// Package config provides configuration management for the oagen CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/oa"
	"github.com/Davincible/oagen/pkg/random"
	"github.com/Davincible/oagen/pkg/strength"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	Strength StrengthConfig  `json:"strength"`
	Limits   LimitsConfig    `json:"limits"`
	UI       UIConfig        `json:"ui"`
	Storage  StorageConfig   `json:"storage"`
}

// DefaultSettings contains default values for build requests
type DefaultSettings struct {
	Family    string `json:"family"`    // Default: bose
	Levels    int    `json:"levels"`    // Default: 3
	Columns   int    `json:"columns"`   // 0 selects the family maximum
	Randomize bool   `json:"randomize"` // Relabel symbols after construction
	Source    string `json:"source"`    // marsaglia or math
	Seed      [4]int `json:"seed"`      // Marsaglia seed, 1..168
	RandSeed  int64  `json:"rand_seed"` // math/rand seed, 0 selects the default
}

// StrengthConfig contains strength verification settings
type StrengthConfig struct {
	MaxStrength int     `json:"max_strength"` // 0 checks up to the column count
	MediumWork  float64 `json:"medium_work"`  // Progress logging threshold
	BigWork     float64 `json:"big_work"`     // Expensive check threshold
	AutoVerify  bool    `json:"auto_verify"`  // Verify after every build
}

// LimitsConfig bounds the size of build requests
type LimitsConfig struct {
	MaxFieldOrder int `json:"max_field_order"`
	MaxRows       int `json:"max_rows"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Format    string `json:"format"`    // table, csv, json
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// StorageConfig contains array file settings
type StorageConfig struct {
	DefaultPath   string `json:"default_path"`   // Directory for relative output files
	DefaultFormat string `json:"default_format"` // csv or json
}

// Profile is a named build request
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Family      string `json:"family"`
	Levels      int    `json:"levels"`
	Columns     int    `json:"columns"`
	Strength    int    `json:"strength,omitempty"`
	Lambda      int    `json:"lambda,omitempty"`
	Exponent    int    `json:"exponent,omitempty"`
}

// Request resolves the profile into a build request
func (p *Profile) Request() (oa.Request, error) {
	f, err := design.ParseFamily(p.Family)
	if err != nil {
		return oa.Request{}, fmt.Errorf("profile '%s': %w", p.Name, err)
	}
	return oa.Request{
		Family:   f,
		Levels:   p.Levels,
		Columns:  p.Columns,
		Strength: p.Strength,
		Lambda:   p.Lambda,
		Exponent: p.Exponent,
	}, nil
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	profiles   map[string]*Profile
}

// NewConfigManager creates a configuration manager at the default path
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt creates a configuration manager for the given file,
// writing the default configuration when the file does not exist yet
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: configPath,
		profiles:   make(map[string]*Profile),
	}

	if err := cm.LoadConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	if err := cm.LoadProfiles(); err != nil {
		// Profiles are optional, so we don't fail here
		cm.profiles = make(map[string]*Profile)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Family:    "bose",
			Levels:    3,
			Columns:   0,
			Randomize: false,
			Source:    "marsaglia",
			Seed:      random.DefaultSeed,
			RandSeed:  random.DefaultRandSeed,
		},
		Strength: StrengthConfig{
			MaxStrength: 0,
			MediumWork:  strength.DefaultMediumWork,
			BigWork:     strength.DefaultBigWork,
			AutoVerify:  false,
		},
		Limits: LimitsConfig{
			MaxFieldOrder: 4096,
			MaxRows:       1 << 22,
		},
		UI: UIConfig{
			UseColor:  true,
			Format:    "table",
			Verbosity: "normal",
		},
		Storage: StorageConfig{
			DefaultPath:   ".",
			DefaultFormat: "csv",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid config %s: %w", cm.configPath, err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

func (cm *ConfigManager) profilesPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "profiles.json")
}

// LoadProfiles loads saved build profiles
func (cm *ConfigManager) LoadProfiles() error {
	data, err := os.ReadFile(cm.profilesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	profiles := make(map[string]*Profile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}

	cm.profiles = profiles
	return nil
}

// SaveProfiles saves build profiles to disk
func (cm *ConfigManager) SaveProfiles() error {
	data, err := json.MarshalIndent(cm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(cm.profilesPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	return nil
}

// AddProfile adds a new build profile
func (cm *ConfigManager) AddProfile(profile *Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, err := profile.Request(); err != nil {
		return err
	}

	cm.profiles[profile.Name] = profile
	return cm.SaveProfiles()
}

// GetProfile retrieves a build profile by name
func (cm *ConfigManager) GetProfile(name string) (*Profile, error) {
	profile, exists := cm.profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}
	return profile, nil
}

// ListProfiles returns all profiles sorted by name
func (cm *ConfigManager) ListProfiles() []*Profile {
	profiles := make([]*Profile, 0, len(cm.profiles))
	for _, profile := range cm.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles
}

// DeleteProfile removes a build profile
func (cm *ConfigManager) DeleteProfile(name string) error {
	if _, exists := cm.profiles[name]; !exists {
		return fmt.Errorf("profile '%s' not found", name)
	}

	delete(cm.profiles, name)
	return cm.SaveProfiles()
}

// GetConfigPath returns the configuration file path
func GetConfigPath() (string, error) {
	if customPath := os.Getenv("OAGEN_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "oagen", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "oagen", "config.json"), nil
}

// ApplyDefaults fills the unset fields of a build request
func (cm *ConfigManager) ApplyDefaults(req *oa.Request) error {
	if req.Family == 0 {
		f, err := design.ParseFamily(cm.config.Defaults.Family)
		if err != nil {
			return fmt.Errorf("config defaults: %w", err)
		}
		req.Family = f
	}

	if req.Levels == 0 {
		req.Levels = cm.config.Defaults.Levels
	}

	if req.Columns == 0 {
		req.Columns = cm.config.Defaults.Columns
	}

	return nil
}

// Generator returns an array generator bounded by the configured limits
func (cm *ConfigManager) Generator() *oa.Generator {
	return &oa.Generator{
		MaxRows:       cm.config.Limits.MaxRows,
		MaxFieldOrder: cm.config.Limits.MaxFieldOrder,
	}
}

// ValidateRequest checks a request against its family and the configured limits
func (cm *ConfigManager) ValidateRequest(req oa.Request) error {
	_, err := cm.Generator().Shape(req)
	return err
}

// StrengthOptions returns verifier options from the strength section
func (cm *ConfigManager) StrengthOptions() strength.Options {
	return strength.Options{
		MaxStrength: cm.config.Strength.MaxStrength,
		MediumWork:  cm.config.Strength.MediumWork,
		BigWork:     cm.config.Strength.BigWork,
	}
}

// RandomSource builds the configured uniform source
func (cm *ConfigManager) RandomSource() (random.Source, error) {
	d := cm.config.Defaults
	switch strings.ToLower(d.Source) {
	case "", "marsaglia":
		m, err := random.NewMarsaglia(random.Seed(d.Seed))
		if err != nil {
			return nil, err
		}
		return m, nil
	case "math":
		return random.NewRand(d.RandSeed), nil
	default:
		return nil, fmt.Errorf("unknown random source '%s'", d.Source)
	}
}

// ValidateConfig checks a configuration for values the tool cannot use
func ValidateConfig(config *Config) error {
	if _, err := design.ParseFamily(config.Defaults.Family); err != nil {
		return fmt.Errorf("defaults.family: %w", err)
	}
	if config.Defaults.Levels < 0 {
		return fmt.Errorf("defaults.levels must not be negative")
	}
	if config.Defaults.Columns < 0 {
		return fmt.Errorf("defaults.columns must not be negative")
	}

	switch strings.ToLower(config.Defaults.Source) {
	case "", "marsaglia":
		if !random.Seed(config.Defaults.Seed).Valid() {
			return fmt.Errorf("defaults.seed: %w", random.ErrInvalidSeed)
		}
	case "math":
	default:
		return fmt.Errorf("defaults.source must be marsaglia or math, got '%s'", config.Defaults.Source)
	}

	if config.Strength.MaxStrength < 0 {
		return fmt.Errorf("strength.max_strength must not be negative")
	}
	if config.Strength.MediumWork < 0 || config.Strength.BigWork < 0 {
		return fmt.Errorf("strength work thresholds must not be negative")
	}
	if config.Limits.MaxFieldOrder < 0 || config.Limits.MaxRows < 0 {
		return fmt.Errorf("limits must not be negative")
	}

	switch config.UI.Format {
	case "", "table", "csv", "json":
	default:
		return fmt.Errorf("ui.format must be table, csv or json, got '%s'", config.UI.Format)
	}
	switch config.Storage.DefaultFormat {
	case "", "csv", "json":
	default:
		return fmt.Errorf("storage.default_format must be csv or json, got '%s'", config.Storage.DefaultFormat)
	}

	return nil
}
