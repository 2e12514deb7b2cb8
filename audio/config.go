package audio

import (
	"os"
	"strconv"
)

// Config controls the feedback sounds
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns the configuration used without overrides
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// ApplyEnv overrides cfg from GRIDKIT_AUDIO_ENABLED, GRIDKIT_MASTER_VOLUME
// (0-100) and GRIDKIT_SAMPLE_RATE. Unparsable values are ignored.
func ApplyEnv(cfg Config) Config {
	if enabled := os.Getenv("GRIDKIT_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("GRIDKIT_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("GRIDKIT_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
