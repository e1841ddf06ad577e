package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Config struct {
		App        App
		Server     Server
		Shortener  Shortener
		Sync       Sync
		Platform   Platform
		Storage    Storage
		PostgreSQL PostgreSQL
		Logger     Logger
	}
	App struct {
		ShutdownTimeout time.Duration
	}
	Server struct {
		Addr string `env:"SERVER_ADDRESS"`
	}
	Shortener struct {
		// Both BaseAPIURL and APIKey must be set for syncing to happen;
		// leaving either empty disables the integration without error.
		BaseAPIURL string `env:"SHORTENER_API_URL"`
		APIKey     string `env:"SHORTENER_API_KEY"`
		Timeout    time.Duration
	}
	Sync struct {
		GenerateOnSave bool   `env:"SYNC_GENERATE_ON_SAVE"`
		PostType       string `env:"SYNC_POST_TYPE"`
	}
	Platform struct {
		SiteURL string `env:"SITE_URL"`
		APIURL  string `env:"PLATFORM_API_URL"`
		Timeout time.Duration
	}
	Storage struct {
		Filepath string `env:"FILE_STORAGE_PATH"`
	}
	PostgreSQL struct {
		ConnString  string `env:"DATABASE_DSN"`
		PingTimeout time.Duration
	}
	Logger struct {
		Level  string `env:"LOG_LEVEL"`
		Pretty bool   `env:"LOG_PRETTY"`
	}
)

func Load() (*Config, error) {
	cfg := &Config{
		App: App{
			ShutdownTimeout: time.Second * 3,
		},
		Shortener: Shortener{
			Timeout: time.Second * 10,
		},
		Platform: Platform{
			Timeout: time.Second * 5,
		},
		PostgreSQL: PostgreSQL{
			PingTimeout: time.Second * 2,
		},
	}

	flag.StringVar(&cfg.Server.Addr, "a", ":8080", "server address")
	flag.StringVar(&cfg.Shortener.BaseAPIURL, "u", "", "shortener API base URL")
	flag.StringVar(&cfg.Shortener.APIKey, "k", "", "shortener API key")
	flag.BoolVar(&cfg.Sync.GenerateOnSave, "g", true, "generate shortlinks on post save")
	flag.StringVar(&cfg.Sync.PostType, "t", "post", "content type to sync")
	flag.StringVar(&cfg.Platform.SiteURL, "s", "http://localhost:8080", "public site URL")
	flag.StringVar(&cfg.Platform.APIURL, "p", "", "host platform API base URL")
	flag.StringVar(&cfg.Storage.Filepath, "f", "metadata.json", "metadata backup file path")
	flag.StringVar(&cfg.PostgreSQL.ConnString, "d", "", "postgres connection string")
	flag.StringVar(&cfg.Logger.Level, "l", "info", "log level")
	flag.BoolVar(&cfg.Logger.Pretty, "pretty", false, "pretty console logging")
	flag.Parse()

	// Env vars take priority
	err := env.Parse(cfg)

	return cfg, err
}
