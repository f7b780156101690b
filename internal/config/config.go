package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Sheet    SheetConfig    `yaml:"sheet"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type SheetConfig struct {
	// URL is a bootstrap default only; the persisted settings row wins once set.
	URL string `yaml:"url"`
	// Year the meeting schedule is generated for.
	Year           int           `yaml:"year"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type DatabaseConfig struct {
	// Path of the local sqlite file holding settings and the admin account.
	Path string `yaml:"path"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	AdminUser     string `yaml:"admin_user"`
	AdminPassword string `yaml:"admin_password"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 9810},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Sheet:    SheetConfig{Year: time.Now().Year(), RequestTimeout: 15 * time.Second},
		Database: DatabaseConfig{Path: "chun2.db"},
		Auth:     AuthConfig{JWTSecret: "chun2-dev-secret", AdminUser: "admin", AdminPassword: "admin"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/chun2/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Sheet.URL, "SHEET_URL")
	envOverride(&c.Database.Path, "DB_PATH")
	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.Auth.AdminUser, "ADMIN_USER")
	envOverride(&c.Auth.AdminPassword, "ADMIN_PASSWORD")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Sheet.Year, "SHEET_YEAR")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(c.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", c.Database.Path, err)
	}
	return db, nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
