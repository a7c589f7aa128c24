// SPDX-License-Identifier: EPL-2.0

package synthtest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates mono sample data.
// It implements the stream.Source interface (without importing it to
// avoid cycles).
type MockSource struct {
	sampleRate   int
	totalSamples int // Total samples to generate
	generated    int // Samples generated so far
	waveform     func(sample int) float64
}

// NewMockSource creates a new mock sample source.
// waveform generates sample values given the sample index.
func NewMockSource(sampleRate, totalSamples int, waveform func(sample int) float64) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float64 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float64 {
		t := float64(sample) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, totalSamples int, value float64) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(sample int) float64 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated sample counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := len(dst)
	if available := m.totalSamples - m.generated; n > available {
		n = available
	}

	for i := 0; i < n; i++ {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}
	return n, nil
}
