package putt

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultShotStrength    = 20.0  // velocity per unit of aim distance
	DefaultMaxShotStrength = 600.0 // shot speed ceiling, units/sec
)

// Tuning holds the gameplay constants shared with the external input layer.
// ShotStrength scales aim distance into shot magnitude before ApplyShot;
// MaxShotStrength is the ceiling ApplyShot clamps to.
type Tuning struct {
	ShotStrength    float64
	MaxShotStrength float64
}

func DefaultTuning() Tuning {
	return Tuning{
		ShotStrength:    DefaultShotStrength,
		MaxShotStrength: DefaultMaxShotStrength,
	}
}

// TuningFromEnv returns the default tuning with overrides read from the
// environment, loading a .env file first if one is present. Unset variables
// keep their defaults; malformed values are an error.
func TuningFromEnv() (Tuning, error) {
	// A missing .env file is fine, variables may be set directly.
	_ = godotenv.Load()

	tuning := DefaultTuning()
	if err := envFloat("PUTT_SHOT_STRENGTH", &tuning.ShotStrength); err != nil {
		return Tuning{}, err
	}
	if err := envFloat("PUTT_MAX_SHOT_STRENGTH", &tuning.MaxShotStrength); err != nil {
		return Tuning{}, err
	}
	return tuning, nil
}

func envFloat(name string, dst *float64) error {
	s := os.Getenv(name)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = f
	return nil
}
