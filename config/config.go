package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Server struct {
	App      App
	SportsDB SportsDB
	Lookup   Lookup
	History  History
	PG       PG
}

type CLI struct {
	SportsDB SportsDB
	Lookup   Lookup
}

type Migrate struct {
	PG PG
}

// App.Timeout bounds /v1 routes. A lookup makes four sequential upstream calls, so it must stay
// above four times SportsDB.HTTPTimeout.
type App struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	HashedAPIKeys []string      `env:"HASHED_API_KEYS" envSeparator:","`
	SecretKey     string        `env:"SECRET_KEY"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type SportsDB struct {
	BaseURL                string        `env:"SPORTSDB_BASE_URL" envDefault:"https://www.thesportsdb.com"`
	APIKey                 string        `env:"SPORTSDB_API_KEY" envDefault:"123"`
	HTTPTimeout            time.Duration `env:"SPORTSDB_HTTP_TIMEOUT" envDefault:"5s"`
	EventPlaceholderThumb  string        `env:"EVENT_PLACEHOLDER_THUMB" envDefault:"https://via.placeholder.com/50"`
	PlayerPlaceholderThumb string        `env:"PLAYER_PLACEHOLDER_THUMB" envDefault:"https://via.placeholder.com/100"`
}

// Lookup holds pipeline switches. Fetch stages after team resolution run one after another
// unless ConcurrentFetch is set.
type Lookup struct {
	ConcurrentFetch bool `env:"LOOKUP_CONCURRENT_FETCH" envDefault:"false"`
}

type History struct {
	Enabled   bool `env:"HISTORY_ENABLED" envDefault:"false"`
	ListLimit int  `env:"HISTORY_LIST_LIMIT" envDefault:"20"`
}

type PG struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	Database string `env:"PG_DATABASE" envDefault:"postgres"`
}

func Parse[T any]() T {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return cfg
}
