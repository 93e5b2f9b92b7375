package dashrpc

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/erc7824/dashrpc/pkg/log"
)

// TransportKind selects how the client reaches the node.
type TransportKind string

const (
	TransportHTTP TransportKind = "http"
	TransportWS   TransportKind = "ws"
)

const (
	configDirPathEnv     = "DASHRPC_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."
)

// Config describes a node connection.
type Config struct {
	Transport  TransportKind `env:"DASHRPC_TRANSPORT" env-default:"http" validate:"oneof=http ws"`
	URL        string        `env:"DASHRPC_URL" validate:"required,url"`
	WalletName string        `env:"DASHRPC_WALLET"`
	Timeout    time.Duration `env:"DASHRPC_TIMEOUT" env-default:"30s" validate:"gt=0"`
	Auth       Auth
	Log        log.Config
}

var validate = validator.New()

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LoadConfig builds configuration from the environment. A .env file in
// DASHRPC_CONFIG_DIR_PATH (default ".") is loaded first when present.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	configDotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Warn(".env file not found", "path", configDotEnvPath)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, err
	}

	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return nil, err
	}

	logger.Info("loaded configuration",
		"transport", config.Transport,
		"url", config.URL,
		"wallet", config.WalletName,
	)
	return &config, nil
}
