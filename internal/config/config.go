package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"careercode_backend/internal/validator"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port" validate:"min=1,max=65535"`
		Env  string `yaml:"env" validate:"required"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver" validate:"is-db-driver"`
		DSN    string `yaml:"url" validate:"required_unless=Driver memory"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" validate:"required"`
		TTL    string `yaml:"ttl" validate:"required"`
	} `yaml:"jwt"`

	Cookie struct {
		Secure bool `yaml:"secure"`
	} `yaml:"cookie"`

	CORS struct {
		Origins []string `yaml:"origins" validate:"required,min=1,dive,is-origin"`
	} `yaml:"cors"`

	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
		ProjectID       string `yaml:"project_id"`
	} `yaml:"firebase"`

	Redis struct {
		URL     string `yaml:"url"`
		Channel string `yaml:"channel" validate:"required"`
	} `yaml:"redis"`
}

// TokenTTL возвращает время жизни сессионного токена
func (c *Config) TokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TTL)
	return d
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Port = 3000
	cfg.Server.Env = "development"
	cfg.Database.Driver = "postgres"
	cfg.JWT.TTL = "24h"
	cfg.CORS.Origins = []string{"http://localhost:5173"}
	cfg.Redis.Channel = "careercode:applications"
	return &cfg
}

// Load собирает конфигурацию по возрастанию приоритета: YAML файл
// из CONFIG_PATH (необязательно), .env в рабочей директории
// (необязательно), переменные окружения процесса.
func Load() (*Config, error) {
	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	if err := loadFile(configPath, cfg); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if ttl, err := time.ParseDuration(cfg.JWT.TTL); err != nil || ttl <= 0 {
		return nil, fmt.Errorf("config: jwt.ttl must be a positive duration, got %q", cfg.JWT.TTL)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("SERVER_HOST", &cfg.Server.Host)
	setString("SERVER_ENV", &cfg.Server.Env)
	setString("DB_DRIVER", &cfg.Database.Driver)
	setString("DATABASE_URL", &cfg.Database.DSN)
	setString("JWT_ACCESS_SECRET", &cfg.JWT.Secret)
	setString("JWT_TTL", &cfg.JWT.TTL)
	setString("FIREBASE_CREDENTIALS_FILE", &cfg.Firebase.CredentialsFile)
	setString("FIREBASE_PROJECT_ID", &cfg.Firebase.ProjectID)
	setString("REDIS_URL", &cfg.Redis.URL)
	setString("REDIS_CHANNEL", &cfg.Redis.Channel)

	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT must be an integer, got %q", v)
		}
		cfg.Server.Port = port
	}

	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: COOKIE_SECURE must be a boolean, got %q", v)
		}
		cfg.Cookie.Secure = secure
	}

	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.Origins = origins
	}

	return nil
}
