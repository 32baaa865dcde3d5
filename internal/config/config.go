package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Player  PlayerConfig  `toml:"player"`
	Combat  CombatConfig  `toml:"combat"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Seed      int64  `toml:"seed"` // 0 = seed from the clock
	MapWidth  int    `toml:"map_width"`
	MapHeight int    `toml:"map_height"`
	MobCount  int    `toml:"mob_count"`
	MobList   string `toml:"mob_list"`
	Strategy  string `toml:"strategy"` // "" = pick per level; "rect" or "round" to force one
}

type PlayerConfig struct {
	Name  string `toml:"name"`
	HP    int    `toml:"hp"`
	MP    int    `toml:"mp"`
	Sight int    `toml:"sight"`
}

type CombatConfig struct {
	DamagePolicy string `toml:"damage_policy"` // "flat" or "fraction"
	FlatDamage   int    `toml:"flat_damage"`
	HPDivisor    int    `toml:"hp_divisor"` // fraction policy: attacker hp.cur / divisor
}

type DisplayConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	FPS    int `toml:"fps"`
}

// FrameInterval converts FPS to the frame pacing interval.
func (d DisplayConfig) FrameInterval() time.Duration {
	if d.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(d.FPS)
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; the terminal owns stdout
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes TOML bytes over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot start with.
func (c *Config) Validate() error {
	if c.Game.MapWidth <= 15 || c.Game.MapHeight <= 12 {
		return fmt.Errorf("map %dx%d is too small: width must exceed 15 and height 12", c.Game.MapWidth, c.Game.MapHeight)
	}
	if c.Game.MobCount < 0 {
		return fmt.Errorf("mob_count must not be negative, got %d", c.Game.MobCount)
	}
	switch c.Game.Strategy {
	case "", "rect", "round":
	default:
		return fmt.Errorf("unknown map strategy %q", c.Game.Strategy)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("player hp must be positive, got %d", c.Player.HP)
	}
	switch c.Combat.DamagePolicy {
	case "flat":
		if c.Combat.FlatDamage <= 0 {
			return fmt.Errorf("flat_damage must be positive, got %d", c.Combat.FlatDamage)
		}
	case "fraction":
		if c.Combat.HPDivisor <= 0 {
			return fmt.Errorf("hp_divisor must be positive, got %d", c.Combat.HPDivisor)
		}
	default:
		return fmt.Errorf("unknown damage_policy %q", c.Combat.DamagePolicy)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			MapWidth:  80,
			MapHeight: 50,
			MobCount:  10,
			MobList:   "data/yaml/mob_list.yaml",
		},
		Player: PlayerConfig{
			Name:  "you",
			HP:    10,
			MP:    10,
			Sight: 5,
		},
		Combat: CombatConfig{
			DamagePolicy: "flat",
			FlatDamage:   1,
			HPDivisor:    10,
		},
		Display: DisplayConfig{
			Width:  40,
			Height: 25,
			FPS:    10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "progrog.log",
		},
	}
}
