// SPDX-License-Identifier: EPL-2.0

package wavesynth

import (
	"errors"
	"testing"

	"github.com/ik5/wavesynth/stream"
	"github.com/ik5/wavesynth/synth"
)

func TestCollectPCM16DrainsFiniteSource(t *testing.T) {
	t.Parallel()

	src, err := stream.NewVoiceSource(
		synth.Voice{Kind: synth.Sine, Frequency: 440}, 44100, 1000, 1)
	if err != nil {
		t.Fatalf("NewVoiceSource() error = %v", err)
	}

	pcm16, rate, err := CollectPCM16(src, 0, 256)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}
	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}
	if len(pcm16) != 1000 {
		t.Errorf("collected %d samples, want 1000", len(pcm16))
	}
}

func TestCollectPCM16MaxSamplesBoundsInfiniteSource(t *testing.T) {
	t.Parallel()

	src, err := stream.NewVoiceSource(
		synth.Voice{Kind: synth.Square, Frequency: 100}, 8000, 0, 1)
	if err != nil {
		t.Fatalf("NewVoiceSource() error = %v", err)
	}

	pcm16, _, err := CollectPCM16(src, 500, 256)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}
	if len(pcm16) != 500 {
		t.Errorf("collected %d samples, want exactly 500", len(pcm16))
	}
}

func TestCollectPCM16ClampsOverRangeSamples(t *testing.T) {
	t.Parallel()

	src, err := stream.NewBufferSource(synth.Buffer{3, -2, 0.5}, 8000)
	if err != nil {
		t.Fatalf("NewBufferSource() error = %v", err)
	}

	pcm16, _, err := CollectPCM16(src, 0, 16)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}
	if len(pcm16) != 3 {
		t.Fatalf("collected %d samples, want 3", len(pcm16))
	}
	if pcm16[0] != 32767 {
		t.Errorf("over-range sample = %d, want 32767", pcm16[0])
	}
	if pcm16[1] != -32767 {
		t.Errorf("under-range sample = %d, want -32767", pcm16[1])
	}
	if pcm16[2] != 16383 {
		t.Errorf("half-scale sample = %d, want 16383", pcm16[2])
	}
}

type failingSource struct{}

var errSourceBroken = errors.New("source broken")

func (failingSource) SampleRate() int { return 8000 }
func (failingSource) Close() error    { return nil }

func (failingSource) ReadSamples(dst []float64) (int, error) {
	return 0, errSourceBroken
}

func TestCollectPCM16PropagatesSourceError(t *testing.T) {
	t.Parallel()

	_, _, err := CollectPCM16(failingSource{}, 0, 16)
	if !errors.Is(err, errSourceBroken) {
		t.Errorf("CollectPCM16() error = %v, want wrapped %v", err, errSourceBroken)
	}
}

func TestCollectPCM16DefaultBufferSize(t *testing.T) {
	t.Parallel()

	src, err := stream.NewVoiceSource(
		synth.Voice{Kind: synth.Triangle, Frequency: 440}, 44100, 100, 1)
	if err != nil {
		t.Fatalf("NewVoiceSource() error = %v", err)
	}

	pcm16, _, err := CollectPCM16(src, 0, 0)
	if err != nil {
		t.Fatalf("CollectPCM16() error = %v", err)
	}
	if len(pcm16) != 100 {
		t.Errorf("collected %d samples, want 100", len(pcm16))
	}
}

var _ stream.Source = failingSource{}
