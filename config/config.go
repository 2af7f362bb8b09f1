package config

// DefaultHeader is printed before the list of numbers.
const DefaultHeader = "📞 Unique phone numbers:"

// Config is the root configuration of the phonex command.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the zap preset and the rotating log file.
// File may also be "stdout" or "stderr".
type LogConfig struct {
	Env        string `yaml:"env"          env:"PHONEX_LOG_ENV"          env-default:"production"            validate:"oneof=development debug production"`
	File       string `yaml:"file"         env:"PHONEX_LOG_FILE"         env-default:"logs/phone_parser.log"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"PHONEX_LOG_MAX_SIZE_MB"  env-default:"1"                     validate:"gte=1"`
	MaxAgeDays int    `yaml:"max_age_days" env:"PHONEX_LOG_MAX_AGE_DAYS" env-default:"7"                     validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups"  env:"PHONEX_LOG_MAX_BACKUPS"  env-default:"0"                     validate:"gte=0"`
	Compress   bool   `yaml:"compress"     env:"PHONEX_LOG_COMPRESS"     env-default:"true"`
	RedactPII  bool   `yaml:"redact_pii"   env:"PHONEX_LOG_REDACT_PII"   env-default:"false"`
}

// OutputConfig controls what goes to stdout. An empty Header is replaced by
// DefaultHeader on Load.
type OutputConfig struct {
	Header string `yaml:"header" env:"PHONEX_OUTPUT_HEADER"`
}

// MetricsConfig enables the Prometheus textfile dump. An empty File disables it.
type MetricsConfig struct {
	File      string `yaml:"file"      env:"PHONEX_METRICS_FILE"`
	Namespace string `yaml:"namespace" env:"PHONEX_METRICS_NAMESPACE" env-default:"phonex" validate:"required,alphanum"`
}
