// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// WaveformKind selects one of the periodic waveform shapes. The set is
// closed; every kind is a pure function of normalized phase in [0,1) with
// a period of exactly one cycle.
type WaveformKind int

const (
	// Silence always yields 0, regardless of frequency or phase.
	Silence WaveformKind = iota
	// Sine yields sin(2*pi*phase).
	Sine
	// Square yields +1 for the first half of the cycle, -1 for the second.
	Square
	// Sawtooth falls linearly from +1 to -1 over one cycle.
	Sawtooth
	// Triangle rises from -1 to +1 over the first half cycle, then falls back.
	Triangle
	// OnOff yields 1 for the first half of the cycle, 0 for the second.
	// It is unipolar: values lie in [0,1], not [-1,1].
	OnOff
)

func (k WaveformKind) String() string {
	switch k {
	case Silence:
		return "silence"
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	case OnOff:
		return "onoff"
	}
	return "unknown"
}

// Valid reports whether k is one of the defined waveform kinds.
func (k WaveformKind) Valid() bool {
	return k >= Silence && k <= OnOff
}

// At evaluates the waveform at normalized phase. phase is wrapped into
// [0,1) first, so callers may pass any finite value.
func (k WaveformKind) At(phase float64) float64 {
	p := phase - math.Floor(phase)

	switch k {
	case Sine:
		return math.Sin(2 * math.Pi * p)
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 1 - 2*p
	case Triangle:
		if p < 0.5 {
			return 4 * (p - 0.25)
		}
		return 1 - 4*(p-0.5)
	case OnOff:
		if p < 0.5 {
			return 1
		}
		return 0
	}
	// Silence and anything out of range
	return 0
}

// Sample evaluates kind at time t (seconds) for a fixed frequency (Hz).
// It is pure and deterministic: identical inputs always yield identical
// output. Phase is derived as frac(frequency*t) in float64, which keeps
// phase error inaudible over far more than one second of continuous
// playback at audio rates.
//
// A frequency of 0 degenerates to the phase-0 value of kind. Silence
// ignores frequency entirely.
func Sample(kind WaveformKind, frequency, t float64) float64 {
	if kind == Silence {
		return 0
	}
	return kind.At(frequency * t)
}

// Voice is an immutable descriptor of a single oscillator. It owns no
// state: phase is derived from elapsed time, so a Voice can be shared and
// re-rendered freely.
type Voice struct {
	Kind      WaveformKind
	Frequency float64 // Hz
}

// Sample evaluates the voice at time t (seconds).
func (v Voice) Sample(t float64) float64 {
	return Sample(v.Kind, v.Frequency, t)
}

func (v Voice) validate() error {
	if !v.Kind.Valid() {
		return ErrInvalidWaveform
	}
	if v.Frequency < 0 || math.IsNaN(v.Frequency) || math.IsInf(v.Frequency, 0) {
		return ErrInvalidFrequency
	}
	return nil
}

// Render materializes duration seconds of the voice at sampleRate into a
// freshly allocated buffer.
func (v Voice) Render(duration float64, sampleRate int) (Buffer, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	n, err := renderLength(duration, sampleRate)
	if err != nil {
		return nil, err
	}

	buf := make(Buffer, n)
	for i := range buf {
		buf[i] = v.Sample(float64(i) / float64(sampleRate))
	}
	return buf, nil
}

// Buffer is an ordered run of samples at a fixed sample rate, the unit of
// exchange between the synthesis components and the export/streaming
// collaborators. Samples are nominally in [-1,1].
type Buffer []float64

func checkRenderArgs(duration float64, sampleRate int) error {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return ErrInvalidDuration
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// renderLength validates the render arguments and converts them to a
// sample count. Durations whose sample count does not fit in an int are
// rejected rather than letting the conversion wrap negative.
func renderLength(duration float64, sampleRate int) (int, error) {
	if err := checkRenderArgs(duration, sampleRate); err != nil {
		return 0, err
	}
	n := duration * float64(sampleRate)
	if n >= float64(math.MaxInt) {
		return 0, ErrInvalidDuration
	}
	return int(n), nil
}
