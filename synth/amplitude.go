// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// DefaultScanLimit bounds how many samples the fast estimator touches.
// One second worth of samples at CD rate.
const DefaultScanLimit = 44100

// AmplitudeEstimator computes the peak absolute amplitude of a buffer,
// used by the Mixer for normalization.
//
// The exact mode scans the whole buffer and returns the true maximum.
// The fast mode strides across the buffer so at most ScanLimit samples
// are touched; it trades accuracy for bounded work on very large
// buffers. The fast estimate's maximum error is unproven — callers
// choosing it accept potential under- or over-normalization.
type AmplitudeEstimator struct {
	// Fast enables the bounded stride scan.
	Fast bool
	// ScanLimit caps the number of samples inspected in fast mode.
	// Zero means DefaultScanLimit.
	ScanLimit int
}

// Peak returns the peak absolute amplitude of buf. An empty or all-zero
// buffer yields 0, never an error.
func (e AmplitudeEstimator) Peak(buf Buffer) float64 {
	if len(buf) == 0 {
		return 0
	}

	step := 1
	if e.Fast {
		limit := e.ScanLimit
		if limit <= 0 {
			limit = DefaultScanLimit
		}
		if len(buf) > limit {
			// Stride so the touched samples spread over the whole
			// buffer instead of only a prefix.
			step = (len(buf) + limit - 1) / limit
		}
	}

	max := 0.0
	for i := 0; i < len(buf); i += step {
		if a := math.Abs(buf[i]); a > max {
			max = a
		}
	}
	return max
}

// CombinedPeriod returns the period, in samples, of the mix of the given
// voices at sampleRate: the least common multiple of each voice's
// per-cycle sample count. Silent voices and non-positive frequencies
// contribute nothing. A mix with no periodic voice has period 1.
//
// Per-voice periods are rounded up so the window always covers at least
// one full cycle of every voice. When cap is true the result is bounded
// to one second worth of samples, keeping the exact amplitude scan from
// exploding on near-coprime frequencies.
func CombinedPeriod(voices []Voice, sampleRate int, cap bool) int {
	period := 1
	for _, v := range voices {
		if v.Kind == Silence || v.Frequency <= 0 {
			continue
		}
		p := int(math.Ceil(float64(sampleRate) / v.Frequency))
		if p < 1 {
			p = 1
		}
		period = lcm(period, p)
		// Once past the cap, further stages cannot shrink the LCM.
		if cap && period >= sampleRate {
			return sampleRate
		}
	}
	return period
}

func gcd(a, b int) int {
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// lcm saturates at math.MaxInt so near-coprime periods cannot wrap
// around into a negative sample count.
func lcm(a, b int) int {
	l := a / gcd(a, b)
	if l > math.MaxInt/b {
		return math.MaxInt
	}
	return l * b
}
