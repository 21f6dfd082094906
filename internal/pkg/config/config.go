package config

import (
	"fmt"
	"time"

	"github.com/Vlok123/carintel/pkg/logger"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server     Server        `yaml:"server"`
	Logger     logger.Config `yaml:"logger"`
	PostgresDB PostgresDB    `yaml:"db"`
	Auth       Auth          `yaml:"auth"`
	RedisCache RedisCache    `yaml:"rdb"`
	SMTP       SMTP          `yaml:"smtp"`
	Admin      Admin         `yaml:"admin"`
	CORS       CORS          `yaml:"cors"`
	RDW        RDW           `yaml:"rdw"`
}

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

type PostgresDB struct {
	Addr     string `yaml:"addr"`
	Username string `env:"POSTGRES_USER"     env-required:"true" yaml:"username"`
	Password string `env:"POSTGRES_PASSWORD" yaml:"password"`
	DB       string `env:"POSTGRES_DB"       env-required:"true" yaml:"db"`
	SSLmode  string `yaml:"sslmode"`
	MaxConns string `yaml:"maxConns"`
	Reload   bool   `yaml:"reload"`
	Version  int    `yaml:"version"`
}

type Auth struct {
	TTL    time.Duration `yaml:"ttl"`
	Secret string        `env:"SECRET" env-required:"true" yaml:"secret"`
}

type RedisCache struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	ExpTime  time.Duration `yaml:"exp"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `env:"SMTP_USER" yaml:"username"`
	Password string `env:"SMTP_PASSWORD" yaml:"password"`
	From     string `yaml:"from"`
	Operator string `yaml:"operator"`
}

// Admin describes the designated admin account ensured at startup
// and refreshable through the maintenance API.
type Admin struct {
	Email    string `yaml:"email"`
	Password string `env:"ADMIN_PASSWORD" yaml:"password"`
	Name     string `yaml:"name"`
}

type CORS struct {
	// AllowedOrigins is the fixed allow-list; the first entry doubles
	// as the fallback origin for requests from elsewhere.
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type RDW struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

func New(configPath string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config error: %w", err)
	}

	return cfg, nil
}
