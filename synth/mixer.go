// SPDX-License-Identifier: EPL-2.0

package synth

// Mixer sums buffers sample by sample and normalizes the result so its
// peak absolute amplitude is exactly 1. The zero value mixes with an
// exact amplitude estimate.
type Mixer struct {
	Estimator AmplitudeEstimator
}

// Mix combines the given buffers into one normalized buffer.
//
// Buffers of unequal length are zero-padded to the longest input; no
// input is ever truncated. After the elementwise sum, every sample is
// divided by the estimated peak so the output peak is 1 — except when
// the summed signal is all zero (silence, or perfect cancellation), in
// which case the zero buffer is returned unchanged rather than dividing
// by zero.
//
// Mixing a Silence voice with others therefore has no effect on the
// normalized result.
func (m Mixer) Mix(buffers ...Buffer) Buffer {
	longest := 0
	for _, b := range buffers {
		if len(b) > longest {
			longest = len(b)
		}
	}

	mixed := make(Buffer, longest)
	for _, b := range buffers {
		for i, s := range b {
			mixed[i] += s
		}
	}

	peak := m.Estimator.Peak(mixed)
	if peak == 0 {
		return mixed
	}
	for i := range mixed {
		mixed[i] /= peak
	}
	return mixed
}

// MixVoices renders each voice over duration seconds at sampleRate and
// mixes the results. When the mixer's estimator runs in exact mode the
// scan window could be narrowed to CombinedPeriod of the voices; Mix
// scans the full render instead, which is never less accurate.
func (m Mixer) MixVoices(voices []Voice, duration float64, sampleRate int) (Buffer, error) {
	buffers := make([]Buffer, 0, len(voices))
	for _, v := range voices {
		buf, err := v.Render(duration, sampleRate)
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, buf)
	}
	return m.Mix(buffers...), nil
}
