// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// LowPassFilter is a first-order (one-pole) low-pass filter:
//
//	out[i] = out[i-1] + alpha * (in[i] - out[i-1])
//
// where alpha is derived from the cutoff frequency and sample rate. The
// only state is the previous output sample; a fresh filter starts from
// 0 and the state is reset only by creating a new filter.
//
// This design introduces measurable phase shift and some noise relative
// to an ideal filter. That is accepted, documented behavior of a
// first-order smoother, not a defect.
type LowPassFilter struct {
	alpha float64
	prev  float64
}

// NewLowPassFilter derives the smoothing coefficient from cutoff (Hz)
// and sampleRate. The coefficient follows
//
//	nc    = cutoff / (sampleRate/2)
//	alpha = 1 / (1 + pi/nc)
//
// so cutoff near the Nyquist frequency approaches a pass-through and a
// cutoff near 0 flattens the signal toward its running average.
func NewLowPassFilter(cutoff float64, sampleRate int) (*LowPassFilter, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cutoff <= 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return nil, ErrInvalidCutoff
	}

	nc := cutoff / (float64(sampleRate) / 2)
	return &LowPassFilter{
		alpha: 1 / (1 + math.Pi/nc),
	}, nil
}

// Step filters a single sample, advancing the filter state.
func (f *LowPassFilter) Step(in float64) float64 {
	f.prev += f.alpha * (in - f.prev)
	return f.prev
}

// Process filters buf into a new buffer. State persists across calls on
// the same filter instance, so a long stream may be processed in
// chunks.
func (f *LowPassFilter) Process(buf Buffer) Buffer {
	out := make(Buffer, len(buf))
	for i, s := range buf {
		out[i] = f.Step(s)
	}
	return out
}
