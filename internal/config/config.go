package config

import (
	"fmt"
	"os"

	"github.com/lwenger/vocatrain/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Quiz    QuizConfig    `mapstructure:"quiz" validate:"required"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	SourceLang string `mapstructure:"source_lang" validate:"required"`
	TargetLang string `mapstructure:"target_lang" validate:"required"`
}

type StorageConfig struct {
	Backend string       `mapstructure:"backend" validate:"oneof=json sqlite"`
	JSON    JSONConfig   `mapstructure:"json"`
	SQLite  SQLiteConfig `mapstructure:"sqlite"`
}

type JSONConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type QuizConfig struct {
	MinQuestions     int `mapstructure:"min_questions" validate:"min=1"`
	MaxQuestions     int `mapstructure:"max_questions" validate:"min=1,max=1000"`
	DefaultQuestions int `mapstructure:"default_questions" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("storage.backend", "STORE_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind STORE_BACKEND: %w", err)
	}
	if err := v.BindEnv("storage.json.path", "STORE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind STORE_PATH: %w", err)
	}
	if err := v.BindEnv("storage.sqlite.path", "SQLITE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind SQLITE_PATH: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
