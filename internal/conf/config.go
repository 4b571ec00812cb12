// Package conf loads and validates the curation pipeline configuration.
package conf

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/aitacurator/aitacurator/internal/errors"
)

//go:embed config.yaml
var configFiles embed.FS

// LogConfig defines rotation settings for the structured log file.
type LogConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxsize"` // megabytes
	MaxBackups int    `yaml:"maxbackups"`
	MaxAge     int    `yaml:"maxage"` // days
}

// MainSettings holds application-wide settings.
type MainSettings struct {
	Name string    `yaml:"name"` // name of this node, used in log and metadata output
	Log  LogConfig `yaml:"log"`
}

// CorpusSettings locates the raw input tables.
type CorpusSettings struct {
	DataDir         string `yaml:"datadir"`
	SubmissionsFile string `yaml:"submissionsfile"`
	CommentsFile    string `yaml:"commentsfile"`
}

// SamplingSettings holds every tunable of the sampling pipeline.
type SamplingSettings struct {
	Profile               string `yaml:"profile"`
	MaxSubmissionChars    int    `yaml:"maxsubmissionchars"`
	MaxCommentChars       int    `yaml:"maxcommentchars"`
	SamplesPerCategory    int    `yaml:"samplespercategory"`
	OversampleFactor      int    `yaml:"oversamplefactor"`
	CommentsPerSubmission int    `yaml:"commentspersubmission"`
	Seed                  int64  `yaml:"seed"`
}

// OutputSettings controls where sample and favorite sets are written.
type OutputSettings struct {
	SamplesDir   string `yaml:"samplesdir"`
	FavoritesDir string `yaml:"favoritesdir"`
	Prefix       string `yaml:"prefix"`
}

// DatabaseSettings describes the raw dump used by the ingest command.
type DatabaseSettings struct {
	Type     string `yaml:"type"` // sqlite or mysql
	Path     string `yaml:"path"` // sqlite database path
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// BatchSize controls how many rows are read per query during ingest
	BatchSize int `yaml:"batchsize"`
}

// Settings is the root configuration struct, constructed once at process
// start and passed explicitly into commands and components.
type Settings struct {
	Debug bool `yaml:"debug"`

	Version   string `yaml:"-"` // Version from build
	BuildDate string `yaml:"-"` // Build date from build

	Main     MainSettings     `yaml:"main"`
	Corpus   CorpusSettings   `yaml:"corpus"`
	Sampling SamplingSettings `yaml:"sampling"`
	Output   OutputSettings   `yaml:"output"`
	Database DatabaseSettings `yaml:"database"`
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a Settings struct.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	// Validate settings
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file and writes it to the default config path
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")
	defaultConfig := getDefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// getDefaultConfig reads the default configuration from the embedded config.yaml file.
func getDefaultConfig() string {
	data, err := fs.ReadFile(configFiles, "config.yaml")
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	return string(data)
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// SubmissionsPath returns the full path of the raw submissions table.
func (s *Settings) SubmissionsPath() string {
	return filepath.Join(s.Corpus.DataDir, s.Corpus.SubmissionsFile)
}

// CommentsPath returns the full path of the raw comments table.
func (s *Settings) CommentsPath() string {
	return filepath.Join(s.Corpus.DataDir, s.Corpus.CommentsFile)
}

// VerdictSamplesDir returns the directory for verdict-balanced sample output.
func (s *Settings) VerdictSamplesDir() string {
	return filepath.Join(s.Output.SamplesDir, "verdict")
}

// StratifiedSamplesDir returns the directory for stratified sample output.
func (s *Settings) StratifiedSamplesDir() string {
	return filepath.Join(s.Output.SamplesDir, "stratified")
}

// StratifiedFavoritesDir returns the directory for stratified favorites.
func (s *Settings) StratifiedFavoritesDir() string {
	return filepath.Join(s.Output.FavoritesDir, "stratified")
}

// BalancedFavoritesDir returns the directory for balanced favorites.
func (s *Settings) BalancedFavoritesDir() string {
	return filepath.Join(s.Output.FavoritesDir, "balanced")
}
