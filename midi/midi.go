// SPDX-License-Identifier: EPL-2.0

package midi

import "math"

// MaxVelocity is the largest velocity a MIDI note-on can carry.
const MaxVelocity = 127

// LoudnessExponent shapes the velocity-to-gain curve. Linear MIDI
// velocity maps poorly to perceived loudness, so the gain follows a
// power law; 2 is an estimate, not a measured psychoacoustic constant,
// but any exponent > 1 keeps the mapping monotonic.
const LoudnessExponent = 2.0

// NoteEvent is an already-decoded MIDI note message: raw byte parsing
// and channel filtering happen upstream.
type NoteEvent struct {
	Pitch    uint8
	Velocity uint8
	On       bool
}

// NoteToFrequency converts a MIDI pitch number to its equal-temperament
// frequency in Hz, anchored at A4 (pitch 69) = 440 Hz.
func NoteToFrequency(pitch uint8) float64 {
	return 440 * math.Pow(2, (float64(pitch)-69)/12)
}

// VelocityGain maps a MIDI velocity (0-127) to a mix gain in [0,1]
// through the perceptual power curve. Higher velocity never yields a
// lower gain. Velocities above MaxVelocity are rejected.
func VelocityGain(velocity uint8) (float64, error) {
	if velocity > MaxVelocity {
		return 0, ErrInvalidVelocity
	}
	return math.Pow(float64(velocity)/MaxVelocity, LoudnessExponent), nil
}
