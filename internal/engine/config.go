package engine

import (
	"github.com/BurntSushi/toml"
)

// Config is the engine's tunable startup configuration, loaded from an
// optional TOML file and falling back to built-in defaults when none
// is given. Piece values stay compiled-in constants (board.PieceValue);
// only the knobs a tuner would realistically sweep are exposed here.
type Config struct {
	HashMB       int `toml:"hash_mb"`
	DefaultDepth int `toml:"default_depth"`
	MoveTimeMs   int `toml:"move_time_ms"`
	BishopPairMg int `toml:"bishop_pair_mg"`
	BishopPairEg int `toml:"bishop_pair_eg"`
	TempoBonus   int `toml:"tempo_bonus"`
}

// DefaultConfig returns the engine's built-in configuration.
func DefaultConfig() Config {
	return Config{
		HashMB:       64,
		DefaultDepth: 6,
		MoveTimeMs:   0,
		BishopPairMg: 25,
		BishopPairEg: 50,
		TempoBonus:   10,
	}
}

// LoadConfig reads a TOML config file, applying DefaultConfig for any
// field left unset in the file (decoding into an already-defaulted
// struct, the usual BurntSushi/toml idiom). A missing path is not an
// error: callers get defaults back.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// EvalConfig extracts the evaluation-relevant subset of Config.
func (c Config) EvalConfig() EvalConfig {
	return EvalConfig{
		BishopPairMg: c.BishopPairMg,
		BishopPairEg: c.BishopPairEg,
		TempoBonus:   c.TempoBonus,
	}
}
