package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
)

type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	JWT      JWTConfig      `koanf:"jwt"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
	Mode string `koanf:"mode"` // debug, release
}

type DatabaseConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	User         string `koanf:"user"`
	Password     string `koanf:"password"`
	Name         string `koanf:"name"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // silent, error, warn, info
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
}

type JWTConfig struct {
	Secret      string `koanf:"secret"`
	ExpireHours int    `koanf:"expire_hours"`
}

// Load reads .env, then the process environment (SERVER_PORT ->
// server.port, DATABASE_HOST -> database.host, JWT_SECRET ->
// jwt.secret), and fills Conf with defaults for anything unset.
func Load() error {
	var err error
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found")
		}

		k := koanf.New(".")
		if err = k.Load(env.Provider("", ".", func(s string) string {
			return strings.Replace(strings.ToLower(s), "_", ".", 1)
		}), nil); err != nil {
			return
		}

		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			return
		}

		setDefaults(Conf)

		JWTSecret = []byte(Conf.JWT.Secret)
		JWTExpiration = time.Duration(Conf.JWT.ExpireHours) * time.Hour
	})

	return err
}

// MustLoad loads the configuration, exiting on failure.
func MustLoad() {
	if err := Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
}

func setDefaults(c *AppConfig) {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = "warn"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 100
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = defaultJWTSecret
	}
	if c.JWT.ExpireHours == 0 {
		c.JWT.ExpireHours = 24
	}
}
