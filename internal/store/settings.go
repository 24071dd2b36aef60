package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Settings is the last configuration the player started a match with.
type Settings struct {
	Difficulty string `json:"difficulty"`
	MaxPoints  int    `json:"maxPoints"`
	SoundOn    bool   `json:"soundOn"`
	UserSide   string `json:"userSide"`
	GameMode   string `json:"gameMode"`
}

// LoadSettings reports ok=false when nothing has been saved yet.
func LoadSettings(ctx context.Context, s Store) (Settings, bool, error) {
	raw, err := s.Get(ctx, KeySettings)
	if errors.Is(err, ErrNotFound) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}
	var out Settings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Settings{}, false, fmt.Errorf("failed to parse settings: %w", err)
	}
	return out, true, nil
}

func SaveSettings(ctx context.Context, s Store, settings Settings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.Set(ctx, KeySettings, string(b))
}
