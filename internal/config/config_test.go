package config

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "AI_ALGORITHM", "AI_TIME_BUDGET_MS", "W_WIN"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.Search != DefaultSearch() {
		t.Errorf("Search = %+v, want %+v", cfg.Search, DefaultSearch())
	}
	if cfg.DefaultWeights != DefaultWeights() {
		t.Errorf("DefaultWeights = %+v", cfg.DefaultWeights)
	}
	if !cfg.AutoBotMove {
		t.Error("AutoBotMove should default to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AUTO_BOT_MOVE", "false")
	t.Setenv("AI_ALGORITHM", "minimax")
	t.Setenv("AI_HEURISTICS", "naive")
	t.Setenv("AI_TIME_BUDGET_MS", "250")
	t.Setenv("AI_MAX_PLIES", "3")
	t.Setenv("AI_MAX_NODES", "1000")
	t.Setenv("AI_TIE_BREAK", "0.5")
	t.Setenv("W_MOBILITY", "2")

	cfg := Load()
	if cfg.HTTPAddr != ":9000" || cfg.LogLevel != "debug" || cfg.AutoBotMove {
		t.Errorf("unexpected server settings %+v", cfg)
	}
	want := SearchConfig{
		Algorithm:  "minimax",
		Heuristics: "naive",
		TimeBudget: 250 * time.Millisecond,
		MaxPlies:   3,
		MaxNodes:   1000,
		TieBreak:   0.5,
	}
	if cfg.Search != want {
		t.Errorf("Search = %+v, want %+v", cfg.Search, want)
	}
	if cfg.DefaultWeights.Mobility != 2 || cfg.DefaultWeights.Points != 1 {
		t.Errorf("DefaultWeights = %+v", cfg.DefaultWeights)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("AI_TIME_BUDGET_MS", "-5")
	t.Setenv("AI_MAX_PLIES", "many")
	t.Setenv("AUTO_BOT_MOVE", "perhaps")

	cfg := Load()
	if cfg.Search.TimeBudget != time.Second {
		t.Errorf("TimeBudget = %v", cfg.Search.TimeBudget)
	}
	if cfg.Search.MaxPlies != 0 {
		t.Errorf("MaxPlies = %d", cfg.Search.MaxPlies)
	}
	if !cfg.AutoBotMove {
		t.Error("AutoBotMove should keep its default")
	}
}

func TestRoomConfigOverrides(t *testing.T) {
	rc := NewRoomConfig(DefaultSearch(), DefaultWeights())
	if rc.IsCustomized() {
		t.Fatal("fresh room config reports customized")
	}

	rc.Update("RED", SearchConfig{Algorithm: "minimax", MaxPlies: 2}, nil)
	red := rc.GetSearch("RED")
	if red.Algorithm != "minimax" || red.MaxPlies != 2 {
		t.Errorf("RED = %+v", red)
	}
	if red.Heuristics != "positional" || red.TimeBudget != time.Second || red.TieBreak != 0.7 {
		t.Errorf("zero fields not defaulted: %+v", red)
	}
	if rc.GetSearch("GREEN") != DefaultSearch() {
		t.Errorf("GREEN should keep defaults, got %+v", rc.GetSearch("GREEN"))
	}
	if !rc.IsCustomized() {
		t.Error("expected customized after override")
	}
}

func TestRoomConfigWeights(t *testing.T) {
	rc := NewRoomConfig(DefaultSearch(), DefaultWeights())
	w := DefaultWeights()
	w.Win = 10
	rc.Update("GREEN", SearchConfig{}, &w)
	if rc.GetWeights().Win != 10 {
		t.Errorf("weights not stored: %+v", rc.GetWeights())
	}

	raw, err := json.Marshal(rc)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Weights   Weights                 `json:"weights"`
		Overrides map[string]SearchConfig `json:"overrides"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Weights.Win != 10 {
		t.Errorf("marshalled weights = %+v", out.Weights)
	}
	if _, ok := out.Overrides["GREEN"]; !ok {
		t.Errorf("missing GREEN override in %s", raw)
	}
}
