package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration. Every field has a
// working default, so running without a config file is fully supported.
type Config struct {
	Tools ToolsConfig `yaml:"tools"`
	Video VideoConfig `yaml:"video"`
	Paths PathsConfig `yaml:"paths"`
}

// ToolsConfig contains paths to the external media tools
type ToolsConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// VideoConfig contains video discovery settings
type VideoConfig struct {
	// Extension is the candidate filter for directory inputs, e.g. ".mp4"
	Extension string `yaml:"extension"`
}

// PathsConfig contains output placement settings
type PathsConfig struct {
	// OutputDirectory receives trimmed files; empty means alongside the input
	OutputDirectory string `yaml:"output_directory"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			FFmpegPath:  "ffmpeg",
			FFprobePath: "ffprobe",
		},
		Video: VideoConfig{
			Extension: ".mp4",
		},
	}
}

// Load reads and parses the configuration from the specified YAML file,
// filling in defaults for any omitted fields
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the configuration to the specified YAML file, creating parent
// directories as needed
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Tools.FFmpegPath == "" {
		c.Tools.FFmpegPath = def.Tools.FFmpegPath
	}
	if c.Tools.FFprobePath == "" {
		c.Tools.FFprobePath = def.Tools.FFprobePath
	}
	if c.Video.Extension == "" {
		c.Video.Extension = def.Video.Extension
	}
}
