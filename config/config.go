package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"wellbeing/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ExportConfig enables POST /export when Bucket is set.
type ExportConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

type Config struct {
	Env      string       `yaml:"-"`
	Server   ServerConfig `yaml:"server"`
	DB       DBConfig     `yaml:"db"`
	JWT      JWTConfig    `yaml:"jwt"`
	TimeZone string       `yaml:"timezone"`
	Log      LogConfig    `yaml:"log"`
	Export   ExportConfig `yaml:"export"`
}

func defaults() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		DB:       DBConfig{Host: "localhost", Port: 5432, SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 2},
		JWT:      JWTConfig{TTL: 72 * time.Hour},
		TimeZone: "Local",
		Log:      LogConfig{Level: "info"},
		Export:   ExportConfig{Prefix: "exports"},
	}
}

// Load builds the configuration in layers, later ones winning:
// built-in defaults, <dir>/base.yaml, <dir>/<CONFIG_ENV>.yaml, then the
// environment (a .env file in the working directory is loaded first but never
// overrides variables that are already set).
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if dir == "" {
		dir = "config"
	}

	cfg := defaults()
	if err := mergeYAML(cfg, filepath.Join(dir, "base.yaml")); err != nil {
		return nil, err
	}
	cfg.Env = os.Getenv("CONFIG_ENV")
	if cfg.Env != "" && cfg.Env != "base" {
		if err := mergeYAML(cfg, filepath.Join(dir, cfg.Env+".yaml")); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

// mergeYAML decodes path over cfg. A missing file is skipped.
func mergeYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&cfg.DB.Host, "DB_HOST")
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	setString(&cfg.DB.User, "DB_USER")
	setString(&cfg.DB.Password, "DB_PASSWORD")
	setString(&cfg.DB.Name, "DB_NAME")
	setString(&cfg.DB.SSLMode, "DB_SSLMODE")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.TimeZone, "APP_TIMEZONE")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Export.Bucket, "EXPORT_BUCKET")
	setString(&cfg.Export.Region, "AWS_REGION")
}

// Location resolves the zone day keys are computed in.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

var (
	DB     *gorm.DB
	dbOnce sync.Once
	dbErr  error
)

// Database opens the process-wide connection pool once. Later calls return
// the same handle whatever cfg they pass.
func Database(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dbOnce.Do(func() {
		log.Info("connecting to postgres",
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
			zap.String("db", cfg.Name),
		)

		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			dbErr = fmt.Errorf("connect to database: %w", err)
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			dbErr = fmt.Errorf("database handle: %w", err)
			return
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxIdleTime(time.Minute)

		DB = db
	})
	return DB, dbErr
}

// Migrate creates or updates the tables and the (owner, day) unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Gratitude{},
		&models.Happiness{},
		&models.Wellness{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
