package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Intents IntentsConfig `mapstructure:"intents"`
	Answer  AnswerConfig  `mapstructure:"answer"`
	QA      QAConfig      `mapstructure:"qa"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// AllowedOrigins is the CORS origin allow list. "*" allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IntentsConfig points at the curated pattern/response corpus. JSON by default,
// YAML when the path ends in .yaml or .yml.
type IntentsConfig struct {
	Path string `mapstructure:"path"`
}

// AnswerConfig controls how questions are resolved.
type AnswerConfig struct {
	// Strategy is one of "intents", "model" or "hybrid".
	Strategy        string  `mapstructure:"strategy"`
	MatchThreshold  float64 `mapstructure:"match_threshold"`
	AcceptThreshold float64 `mapstructure:"accept_threshold"`
	WordWeight      float64 `mapstructure:"word_weight"`
	SequenceWeight  float64 `mapstructure:"sequence_weight"`
}

// QAConfig configures the extractive question answering model.
// When ServerURL is empty the local sentence extractor is used.
type QAConfig struct {
	ContextPath   string  `mapstructure:"context_path"`
	ServerURL     string  `mapstructure:"server_url"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	// TimeoutSeconds applies to each remote request, including retries.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}
