// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func TestPeakExact(t *testing.T) {
	t.Parallel()

	est := AmplitudeEstimator{}

	buf := Buffer{0.1, -0.7, 0.3, 0.69, -0.2}
	if got := est.Peak(buf); got != 0.7 {
		t.Errorf("Peak() = %v, want 0.7", got)
	}
}

func TestPeakEmptyAndSilent(t *testing.T) {
	t.Parallel()

	for _, est := range []AmplitudeEstimator{{}, {Fast: true}} {
		if got := est.Peak(nil); got != 0 {
			t.Errorf("Peak(nil) = %v, want 0", got)
		}
		if got := est.Peak(make(Buffer, 1000)); got != 0 {
			t.Errorf("Peak(zeros) = %v, want 0", got)
		}
	}
}

func TestPeakFastMatchesExactOnSmallBuffers(t *testing.T) {
	t.Parallel()

	buf := make(Buffer, 500)
	for i := range buf {
		buf[i] = 0.8 * math.Sin(float64(i)*0.01)
	}

	exact := AmplitudeEstimator{}.Peak(buf)
	fast := AmplitudeEstimator{Fast: true}.Peak(buf)

	if exact != fast {
		t.Errorf("fast = %v, exact = %v; buffers under the scan limit must match", fast, exact)
	}
}

func TestPeakFastBoundsWork(t *testing.T) {
	t.Parallel()

	// Constant buffer: the stride scan must still see the true peak no
	// matter which samples it lands on.
	buf := make(Buffer, 200000)
	for i := range buf {
		buf[i] = 0.5
	}

	est := AmplitudeEstimator{Fast: true, ScanLimit: 1000}
	if got := est.Peak(buf); got != 0.5 {
		t.Errorf("fast Peak(constant) = %v, want 0.5", got)
	}
}

func TestPeakFastNeverExceedsExact(t *testing.T) {
	t.Parallel()

	buf := make(Buffer, 150000)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.00271)
	}

	exact := AmplitudeEstimator{}.Peak(buf)
	fast := AmplitudeEstimator{Fast: true, ScanLimit: 500}.Peak(buf)

	// The stride scan inspects a subset, so it can only under-estimate.
	if fast > exact {
		t.Errorf("fast Peak = %v exceeds exact %v", fast, exact)
	}
	if fast == 0 {
		t.Errorf("fast Peak = 0 on a non-silent buffer")
	}
}

func TestCombinedPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		voices []Voice
		rate   int
		cap    bool
		want   int
	}{
		{
			name:   "single voice",
			voices: []Voice{{Kind: Sine, Frequency: 441}},
			rate:   44100,
			want:   100,
		},
		{
			name: "harmonic pair collapses to fundamental",
			voices: []Voice{
				{Kind: Sine, Frequency: 441},
				{Kind: Sine, Frequency: 882},
			},
			rate: 44100,
			want: 100,
		},
		{
			name:   "silence only",
			voices: []Voice{{Kind: Silence}},
			rate:   44100,
			want:   1,
		},
		{
			name:   "no voices",
			voices: nil,
			rate:   44100,
			want:   1,
		},
		{
			name:   "sub-hertz voice capped to one second",
			voices: []Voice{{Kind: Sine, Frequency: 0.9}},
			rate:   44100,
			cap:    true,
			want:   44100,
		},
		{
			name:   "sub-hertz voice uncapped",
			voices: []Voice{{Kind: Sine, Frequency: 0.9}},
			rate:   44100,
			want:   49000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CombinedPeriod(tt.voices, tt.rate, tt.cap)
			if got != tt.want {
				t.Errorf("CombinedPeriod() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombinedPeriodSaturatesInsteadOfWrapping(t *testing.T) {
	t.Parallel()

	// Three near-coprime periods around 2^31 samples each: the running
	// LCM exceeds the int range and must saturate, never go negative.
	voices := []Voice{
		{Kind: Sine, Frequency: 44100.0 / 2147483647},
		{Kind: Sine, Frequency: 44100.0 / 2147483629},
		{Kind: Sine, Frequency: 44100.0 / 2147483587},
	}

	got := CombinedPeriod(voices, 44100, false)
	if got <= 0 {
		t.Fatalf("CombinedPeriod() = %d, wrapped past the int range", got)
	}
	if got != math.MaxInt {
		t.Errorf("CombinedPeriod() = %d, want saturation at %d", got, math.MaxInt)
	}

	if capped := CombinedPeriod(voices, 44100, true); capped != 44100 {
		t.Errorf("CombinedPeriod(cap) = %d, want 44100", capped)
	}
}

func BenchmarkPeakExact(b *testing.B) {
	buf := make(Buffer, 44100)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.0627)
	}
	est := AmplitudeEstimator{}

	b.ReportAllocs()
	for b.Loop() {
		_ = est.Peak(buf)
	}
}

func BenchmarkPeakFast(b *testing.B) {
	buf := make(Buffer, 44100*10)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.0627)
	}
	est := AmplitudeEstimator{Fast: true}

	b.ReportAllocs()
	for b.Loop() {
		_ = est.Peak(buf)
	}
}
