package config

import (
	"encoding/json"
	"sync"
)

// RoomConfig holds the engine settings of one room. Each computer color
// may override the process defaults.
type RoomConfig struct {
	mu        sync.RWMutex
	defaults  SearchConfig
	weights   Weights
	base      Weights
	overrides map[string]SearchConfig
}

func NewRoomConfig(defaults SearchConfig, weights Weights) *RoomConfig {
	return &RoomConfig{
		defaults:  defaults,
		weights:   weights,
		base:      weights,
		overrides: make(map[string]SearchConfig),
	}
}

// GetSearch returns the settings for color, the room defaults when the color
// has no override.
func (rc *RoomConfig) GetSearch(color string) SearchConfig {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if sc, ok := rc.overrides[color]; ok {
		return sc
	}
	return rc.defaults
}

func (rc *RoomConfig) GetWeights() Weights {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.weights
}

func (rc *RoomConfig) IsCustomized() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.overrides) > 0 || rc.weights != rc.base
}

// Update stores an override for color. Zero fields fall back to the room
// defaults. A nil weights pointer keeps the current weights.
func (rc *RoomConfig) Update(color string, sc SearchConfig, weights *Weights) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if sc.Algorithm == "" {
		sc.Algorithm = rc.defaults.Algorithm
	}
	if sc.Heuristics == "" {
		sc.Heuristics = rc.defaults.Heuristics
	}
	if sc.TimeBudget <= 0 {
		sc.TimeBudget = rc.defaults.TimeBudget
	}
	if sc.TieBreak <= 0 {
		sc.TieBreak = rc.defaults.TieBreak
	}
	rc.overrides[color] = sc
	if weights != nil {
		rc.weights = *weights
	}
}

func (rc *RoomConfig) MarshalJSON() ([]byte, error) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return json.Marshal(struct {
		Defaults  SearchConfig            `json:"defaults"`
		Weights   Weights                 `json:"weights"`
		Overrides map[string]SearchConfig `json:"overrides"`
	}{rc.defaults, rc.weights, rc.overrides})
}
