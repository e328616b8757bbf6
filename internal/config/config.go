package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/chunk-team/chunkforge/internal/chunk"
)

const (
	// ConfigFileName is the project config file looked up in the working
	// directory when no --config flag is given.
	ConfigFileName = "chunkforge.yaml"

	DefaultOutputRoot   = "/"
	DefaultChunkLoading = "dom"
	DefaultBuildDir     = "dist"
	DefaultManifest     = "chunks.yaml"

	// Generation worker pool configuration
	DefaultWorkers   = 4   // Concurrent generation workers
	DefaultQueueSize = 100 // Size of the generation queue buffer

	// Watch mode configuration
	DefaultWatchRate = 2 // Maximum rebuilds per second
)

// Config is the project configuration for a dev build.
type Config struct {
	// OutputRoot is the base output path chunk paths are expressed against
	// at runtime.
	OutputRoot string `mapstructure:"output_root" yaml:"output_root"`

	// ChunkLoading selects the runtime chunk loading strategy: none,
	// nodejs or dom.
	ChunkLoading string `mapstructure:"chunk_loading" yaml:"chunk_loading"`

	// BuildDir is the filesystem directory the output root maps to, where
	// generated artifacts are written.
	BuildDir string `mapstructure:"build_dir" yaml:"build_dir"`

	// Manifest is the path of the build manifest file.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	// ChunkListDir, relative to the output root, is where chunk list
	// artifacts are placed. Empty means directly under the root.
	ChunkListDir string `mapstructure:"chunk_list_dir" yaml:"chunk_list_dir"`

	Workers   int `mapstructure:"workers" yaml:"workers"`
	QueueSize int `mapstructure:"queue_size" yaml:"queue_size"`
	WatchRate int `mapstructure:"watch_rate" yaml:"watch_rate"`
}

// Load reads the config file at path, creating it with defaults first if it
// does not exist yet.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, Default()); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("output_root", DefaultOutputRoot)
	v.SetDefault("chunk_loading", DefaultChunkLoading)
	v.SetDefault("build_dir", DefaultBuildDir)
	v.SetDefault("manifest", DefaultManifest)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("queue_size", DefaultQueueSize)
	v.SetDefault("watch_rate", DefaultWatchRate)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		OutputRoot:   DefaultOutputRoot,
		ChunkLoading: DefaultChunkLoading,
		BuildDir:     DefaultBuildDir,
		Manifest:     DefaultManifest,
		Workers:      DefaultWorkers,
		QueueSize:    DefaultQueueSize,
		WatchRate:    DefaultWatchRate,
	}
}

// Validate checks field ranges and the loading strategy tag.
func (c *Config) Validate() error {
	if _, err := chunk.ParseLoading(c.ChunkLoading); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be positive, got %d", c.QueueSize)
	}
	if c.WatchRate <= 0 {
		return fmt.Errorf("watch_rate must be positive, got %d", c.WatchRate)
	}
	return nil
}

// Loading returns the parsed chunk loading strategy.
func (c *Config) Loading() chunk.Loading {
	loading, err := chunk.ParseLoading(c.ChunkLoading)
	if err != nil {
		// Validate already rejected unknown tags.
		panic(err)
	}
	return loading
}
