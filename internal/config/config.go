package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Weights scale the terms of the positional heuristic.
type Weights struct {
	Points    float64 `json:"points"`
	Pieces    float64 `json:"pieces"`
	Mobility  float64 `json:"mobility"`
	TwoInLine float64 `json:"two_in_line"`
	Win       float64 `json:"win"`
}

// SearchConfig tunes one computer player. Algorithm and Heuristics hold the
// names accepted by game.ParseAlgorithm and game.ParseHeuristics.
type SearchConfig struct {
	Algorithm  string        `json:"algorithm"`
	Heuristics string        `json:"heuristics"`
	TimeBudget time.Duration `json:"time_budget"`
	MaxPlies   int           `json:"max_plies"`
	MaxNodes   int           `json:"max_nodes"`
	TieBreak   float64       `json:"tie_break"`
}

type Config struct {
	HTTPAddr    string
	LogLevel    string
	LogPretty   bool
	AutoBotMove bool

	Search         SearchConfig
	DefaultWeights Weights
}

func DefaultWeights() Weights {
	return Weights{
		Points:    1,
		Pieces:    0.5,
		Mobility:  0.25,
		TwoInLine: 0.125,
		Win:       100,
	}
}

func DefaultSearch() SearchConfig {
	return SearchConfig{
		Algorithm:  "alpha-beta",
		Heuristics: "positional",
		TimeBudget: time.Second,
		MaxNodes:   400000,
		TieBreak:   0.7,
	}
}

func getenvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getenvMillis reads a duration given in milliseconds.
func getenvMillis(key string, def time.Duration) time.Duration {
	ms := getenvInt(key, int(def/time.Millisecond))
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func Load() *Config {
	dw := DefaultWeights()
	ds := DefaultSearch()
	return &Config{
		HTTPAddr:    getenvString("HTTP_ADDR", ":8080"),
		LogLevel:    strings.ToLower(getenvString("LOG_LEVEL", "info")),
		LogPretty:   getenvBool("LOG_PRETTY", false),
		AutoBotMove: getenvBool("AUTO_BOT_MOVE", true),
		Search: SearchConfig{
			Algorithm:  getenvString("AI_ALGORITHM", ds.Algorithm),
			Heuristics: getenvString("AI_HEURISTICS", ds.Heuristics),
			TimeBudget: getenvMillis("AI_TIME_BUDGET_MS", ds.TimeBudget),
			MaxPlies:   getenvInt("AI_MAX_PLIES", ds.MaxPlies),
			MaxNodes:   getenvInt("AI_MAX_NODES", ds.MaxNodes),
			TieBreak:   getenvFloat("AI_TIE_BREAK", ds.TieBreak),
		},
		DefaultWeights: Weights{
			Points:    getenvFloat("W_POINTS", dw.Points),
			Pieces:    getenvFloat("W_PIECES", dw.Pieces),
			Mobility:  getenvFloat("W_MOBILITY", dw.Mobility),
			TwoInLine: getenvFloat("W_TWO_IN_LINE", dw.TwoInLine),
			Win:       getenvFloat("W_WIN", dw.Win),
		},
	}
}

var (
	once     sync.Once
	instance *Config
)

// Get returns the process wide configuration, loaded on first use.
func Get() *Config {
	once.Do(func() {
		instance = Load()
	})
	return instance
}

// SetupLogger configures the global zerolog logger from cfg.
func SetupLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
