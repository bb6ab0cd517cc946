package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Roles holds the backend role identifiers attached to creation requests.
// They are configuration, not code: a backend redeploy can renumber them.
type Roles struct {
	PlayerRoleID string `yaml:"player_role_id" env:"TUNG_PLAYER_ROLE_ID" envDefault:"2"`
	HostRoleID   string `yaml:"host_role_id" env:"TUNG_HOST_ROLE_ID" envDefault:"3"`
}

type Config struct {
	BaseURL     string        `env:"TUNG_API_URL" envDefault:"https://back.tungdeportes.com/api"`
	HTTPTimeout time.Duration `env:"TUNG_HTTP_TIMEOUT" envDefault:"30s"`
	TokenPath   string        `env:"TUNG_TOKEN_PATH"`
	LogLevel    string        `env:"TUNG_LOG_LEVEL" envDefault:"info"`
	// Optional YAML file overriding the role identifiers.
	RolesFile string `env:"TUNG_ROLES_FILE"`
	Roles     Roles
}

// Load reads configuration from a .env file (when present) and the
// environment, then applies the roles file on top.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.TokenPath = filepath.Join(home, ".tung", "tokens.json")
	}

	if cfg.RolesFile != "" {
		if err := loadRolesFile(cfg.RolesFile, &cfg.Roles); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func loadRolesFile(path string, roles *Roles) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read roles file: %w", err)
	}
	if err := yaml.Unmarshal(data, roles); err != nil {
		return fmt.Errorf("failed to parse roles file: %w", err)
	}
	return nil
}
