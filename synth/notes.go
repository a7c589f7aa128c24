// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/ik5/wavesynth/midi"
)

// NoteMixer holds the set of currently sounding MIDI pitches and mixes
// one voice per active pitch. The waveform kind is fixed for the life
// of the mixer; each note's frequency comes from the standard MIDI
// pitch conversion and its gain from the perceptual velocity curve.
//
// A pitch is either inactive or active; there is no release phase. A
// note-on for an already-active pitch replaces its velocity. Polyphony
// is unlimited.
//
// Rendering keeps a running sample clock so consecutive Render calls
// produce a continuous stream. Like the rest of the package, one
// NoteMixer must only be advanced by a single caller at a time.
type NoteMixer struct {
	kind       WaveformKind
	sampleRate int
	mixer      Mixer

	gains map[uint8]float64
	clock int64
}

// NewNoteMixer creates a mixer producing kind-shaped voices at
// sampleRate, normalizing through est.
func NewNoteMixer(kind WaveformKind, sampleRate int, est AmplitudeEstimator) (*NoteMixer, error) {
	if !kind.Valid() {
		return nil, ErrInvalidWaveform
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &NoteMixer{
		kind:       kind,
		sampleRate: sampleRate,
		mixer:      Mixer{Estimator: est},
		gains:      make(map[uint8]float64),
	}, nil
}

// NoteOn activates pitch at the given velocity, replacing the velocity
// if the pitch is already sounding.
func (nm *NoteMixer) NoteOn(pitch, velocity uint8) error {
	gain, err := midi.VelocityGain(velocity)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	nm.gains[pitch] = gain
	return nil
}

// NoteOff deactivates pitch. Releasing an inactive pitch is a no-op.
// When the last note goes silent the sample clock rewinds to zero, so
// the next phrase starts at phase 0.
func (nm *NoteMixer) NoteOff(pitch uint8) {
	delete(nm.gains, pitch)
	if len(nm.gains) == 0 {
		nm.clock = 0
	}
}

// Apply dispatches a decoded note event to NoteOn or NoteOff.
func (nm *NoteMixer) Apply(ev midi.NoteEvent) error {
	if ev.On {
		return nm.NoteOn(ev.Pitch, ev.Velocity)
	}
	nm.NoteOff(ev.Pitch)
	return nil
}

// ActiveNotes returns how many pitches are currently sounding.
func (nm *NoteMixer) ActiveNotes() int { return len(nm.gains) }

// SampleRate returns the rate the mixer renders at.
func (nm *NoteMixer) SampleRate() int { return nm.sampleRate }

// Render produces duration seconds of the current chord, advancing the
// sample clock. With no active notes it returns silence of the same
// length.
func (nm *NoteMixer) Render(duration float64) (Buffer, error) {
	n, err := renderLength(duration, nm.sampleRate)
	if err != nil {
		return nil, err
	}
	return nm.RenderSamples(n)
}

// RenderSamples produces exactly n samples of the current chord,
// advancing the sample clock. Pull-based consumers use this directly so
// no sample is lost to seconds-to-count rounding.
func (nm *NoteMixer) RenderSamples(n int) (Buffer, error) {
	if n < 0 {
		return nil, ErrInvalidDuration
	}

	if len(nm.gains) == 0 {
		nm.clock += int64(n)
		return make(Buffer, n), nil
	}

	buffers := make([]Buffer, 0, len(nm.gains))
	for pitch, gain := range nm.gains {
		freq := midi.NoteToFrequency(pitch)
		buf := make(Buffer, n)
		for i := range buf {
			t := float64(nm.clock+int64(i)) / float64(nm.sampleRate)
			buf[i] = gain * Sample(nm.kind, freq, t)
		}
		buffers = append(buffers, buf)
	}
	nm.clock += int64(n)

	return nm.mixer.Mix(buffers...), nil
}
