package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Sort     SortConfig     `yaml:"sort" mapstructure:"sort"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	OCR      OCRConfig      `yaml:"ocr" mapstructure:"ocr"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run ledger backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// SortConfig configures folder discovery and target placement.
type SortConfig struct {
	SourceDir       string `yaml:"source_dir" mapstructure:"source_dir"`
	TargetDir       string `yaml:"target_dir" mapstructure:"target_dir"`
	IndustryDir     string `yaml:"industry_dir" mapstructure:"industry_dir"`
	UnclassifiedDir string `yaml:"unclassified_dir" mapstructure:"unclassified_dir"`
	ReportDir       string `yaml:"report_dir" mapstructure:"report_dir"`
	ModelDir        string `yaml:"model_dir" mapstructure:"model_dir"`
	OnCollision     string `yaml:"on_collision" mapstructure:"on_collision"`
	ManifestPath    string `yaml:"manifest_path" mapstructure:"manifest_path"`
}

// RegistryConfig points at an entity registry file (YAML or XLSX). Empty
// uses the built-in registry.
type RegistryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// OCRConfig configures PDF text extraction.
type OCRConfig struct {
	Provider      string `yaml:"provider" mapstructure:"provider"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MistralKey    string `yaml:"mistral_api_key" mapstructure:"mistral_api_key"`
	MistralModel  string `yaml:"mistral_ocr_model" mapstructure:"mistral_ocr_model"`
}

// ServerConfig configures the classification API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SORTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "research-sorter.db")
	v.SetDefault("sort.source_dir", "Investment Research")
	v.SetDefault("sort.target_dir", "Company_Research_Sorted")
	v.SetDefault("sort.industry_dir", "行业报告")
	v.SetDefault("sort.unclassified_dir", "_未分类文件")
	v.SetDefault("sort.report_dir", "报告")
	v.SetDefault("sort.model_dir", "模型")
	v.SetDefault("sort.on_collision", "overwrite")
	v.SetDefault("registry.path", "")
	v.SetDefault("ocr.provider", "local")
	v.SetDefault("ocr.pdftotext_path", "pdftotext")
	v.SetDefault("ocr.timeout_secs", 30)
	v.SetDefault("ocr.mistral_ocr_model", "mistral-ocr-latest")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch c.Store.Driver {
	case "sqlite", "postgres", "none":
	default:
		errs = append(errs, "store.driver must be one of sqlite, postgres, none")
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		errs = append(errs, "store.database_url is required for postgres")
	}

	switch mode {
	case "sort":
		if c.Sort.SourceDir == "" {
			errs = append(errs, "sort.source_dir is required")
		}
		if c.Sort.TargetDir == "" {
			errs = append(errs, "sort.target_dir is required")
		}
		switch c.Sort.OnCollision {
		case "overwrite", "suffix":
		default:
			errs = append(errs, "sort.on_collision must be overwrite or suffix")
		}
		if c.OCR.Provider == "mistral" && c.OCR.MistralKey == "" {
			errs = append(errs, "ocr.mistral_api_key is required for the mistral provider")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be between 1 and 65535")
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, "server.rate_limit must not be negative")
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
