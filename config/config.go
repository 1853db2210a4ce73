package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Script     ScriptConfig     `yaml:"script"`
	Images     ImagesConfig     `yaml:"images"`
	Narration  NarrationConfig  `yaml:"narration"`
	Video      VideoConfig      `yaml:"video"`
	Publish    PublishConfig    `yaml:"publish"`
	Continuous ContinuousConfig `yaml:"continuous"`
	Paths      PathsConfig      `yaml:"paths"`
}

type ScriptConfig struct {
	GeminiModel string  `yaml:"gemini_model"`
	Temperature float32 `yaml:"temperature"`
	TopK        int32   `yaml:"top_k"`
	TopP        float32 `yaml:"top_p"`
}

type ImagesConfig struct {
	GeminiModel   string  `yaml:"gemini_model"`
	MaxRetries    int     `yaml:"max_retries"`
	RetryDelaySec float64 `yaml:"retry_delay_sec"`
	PacingSec     float64 `yaml:"pacing_sec"`
	Letterbox     bool    `yaml:"letterbox"`
}

type NarrationConfig struct {
	EngineURL     string  `yaml:"engine_url"`
	Language      string  `yaml:"language"`
	SampleRate    int     `yaml:"sample_rate"`
	MaxRetries    int     `yaml:"max_retries"`
	RetryDelaySec float64 `yaml:"retry_delay_sec"`
}

type VideoConfig struct {
	DurationPerImageSec float64 `yaml:"duration_per_image_sec"`
	FadeSec             float64 `yaml:"fade_sec"`
	FPS                 int     `yaml:"fps"`
	AddTransitions      bool    `yaml:"add_transitions"`
	AddCaptions         bool    `yaml:"add_captions"`
	ApplyEffects        bool    `yaml:"apply_effects"`
	MinEffects          int     `yaml:"min_effects"`
	MaxEffects          int     `yaml:"max_effects"`
	EffectSeed          int64   `yaml:"effect_seed"` // 0 = seed from clock
}

type PublishConfig struct {
	Enabled         bool   `yaml:"enabled"`
	CredentialsFile string `yaml:"credentials_file"`
	ParentFolderID  string `yaml:"parent_folder_id"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SheetRange      string `yaml:"sheet_range"`
}

type ContinuousConfig struct {
	DelaySec int `yaml:"delay_sec"`
}

type PathsConfig struct {
	Scripts string `yaml:"scripts"`
	Images  string `yaml:"images"`
	Audio   string `yaml:"audio"`
	Videos  string `yaml:"videos"`
	Logs    string `yaml:"logs"`
}

// Load reads a yaml config file and returns a Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no config.yaml is present.
func Default() *Config {
	return &Config{
		Script: ScriptConfig{
			GeminiModel: "gemini-2.0-flash-thinking-exp-01-21",
			Temperature: 0.8,
			TopK:        40,
			TopP:        0.95,
		},
		Images: ImagesConfig{
			GeminiModel:   "gemini-2.0-flash-exp-image-generation",
			MaxRetries:    3,
			RetryDelaySec: 5,
			PacingSec:     2,
			Letterbox:     true,
		},
		Narration: NarrationConfig{
			EngineURL:     "http://localhost:8880",
			Language:      "en-us",
			SampleRate:    24000,
			MaxRetries:    3,
			RetryDelaySec: 3,
		},
		Video: VideoConfig{
			DurationPerImageSec: 5.0,
			FadeSec:             0.5,
			FPS:                 24,
			AddTransitions:      true,
			AddCaptions:         true,
			ApplyEffects:        true,
			MinEffects:          2,
			MaxEffects:          4,
		},
		Publish: PublishConfig{
			SheetRange: "Uploads!A:F",
		},
		Continuous: ContinuousConfig{
			DelaySec: 120,
		},
		Paths: PathsConfig{
			Scripts: "output/scripts",
			Images:  "output/images",
			Audio:   "output/audio",
			Videos:  "output/videos",
			Logs:    "output/logs",
		},
	}
}
