package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	LLM         LLMConfig         `yaml:"llm"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Search      SearchConfig      `yaml:"search"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	// OutputFormat selects the transcript artifact whisper produces:
	// srt or json.
	OutputFormat string `yaml:"output_format"`
}

type LLMConfig struct {
	Provider       string  `yaml:"provider"`
	APIKey         string  `yaml:"api_key"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embedding_model"`
	Dimensions     int     `yaml:"dimensions"`
	Temperature    float64 `yaml:"temperature"`
}

type ChunkingConfig struct {
	TargetDurationSec float64 `yaml:"target_duration_sec"`
	MaxWords          int     `yaml:"max_words"`
	// Bounds for the speaker-labeled flow, which favors smaller
	// speaker-pure chunks over long mixed ones.
	LabeledTargetDurationSec float64 `yaml:"labeled_target_duration_sec"`
	LabeledMaxWords          int     `yaml:"labeled_max_words"`
	LabelSpeakers            bool    `yaml:"label_speakers"`
}

type SearchConfig struct {
	InterviewLimit int `yaml:"interview_limit"`
	GlobalLimit    int `yaml:"global_limit"`
}

type SummaryConfig struct {
	Format string `yaml:"format"` // none, md, docx
	Dir    string `yaml:"dir"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Database == "" {
		return fmt.Errorf("paths.database is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.OutputFormat == "" {
		c.Whisper.OutputFormat = "srt"
	}
	if c.Whisper.OutputFormat != "srt" && c.Whisper.OutputFormat != "json" {
		return fmt.Errorf("whisper.output_format must be srt or json, got %q", c.Whisper.OutputFormat)
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Dimensions == 0 {
		c.LLM.Dimensions = 1536
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.Chunking.TargetDurationSec == 0 {
		c.Chunking.TargetDurationSec = 180
	}
	if c.Chunking.MaxWords == 0 {
		c.Chunking.MaxWords = 500
	}
	if c.Chunking.LabeledTargetDurationSec == 0 {
		c.Chunking.LabeledTargetDurationSec = 60
	}
	if c.Chunking.LabeledMaxWords == 0 {
		c.Chunking.LabeledMaxWords = 300
	}
	if c.Search.InterviewLimit == 0 {
		c.Search.InterviewLimit = 10
	}
	if c.Search.GlobalLimit == 0 {
		c.Search.GlobalLimit = 20
	}
	if c.Summary.Format == "" {
		c.Summary.Format = "none"
	}
	if c.Summary.Format != "none" && c.Summary.Dir == "" {
		return fmt.Errorf("summary.dir is required when summary.format is %q", c.Summary.Format)
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
