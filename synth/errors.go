package synth

import "errors"

var (
	ErrInvalidWaveform   = errors.New("unknown waveform kind")
	ErrInvalidFrequency  = errors.New("frequency must be finite and non-negative")
	ErrInvalidDuration   = errors.New("duration must be finite and non-negative")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidCutoff     = errors.New("cutoff frequency must be positive")
	ErrInvalidDepth      = errors.New("modulation depth must be finite and non-negative")
)
