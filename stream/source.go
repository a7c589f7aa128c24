// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"

	"github.com/ik5/wavesynth/synth"
)

// Source is a pull-based mono sample stream in [-1,1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// ReadSamples fills dst with samples. When n == 0 with err == io.EOF,
	// the stream is finished.
	ReadSamples(dst []float64) (n int, err error)

	// Close releases any resources.
	Close() error
}

// VoiceSource streams a stateless voice. A limit of 0 streams forever;
// otherwise the source returns io.EOF after exactly limit samples.
type VoiceSource struct {
	voice      synth.Voice
	sampleRate int
	limit      int64
	pos        int64
	volume     float64
}

// NewVoiceSource creates a source over voice. volume scales every
// sample before delivery (the playback layer traditionally runs well
// under unity to leave headroom).
func NewVoiceSource(voice synth.Voice, sampleRate int, limit int64, volume float64) (*VoiceSource, error) {
	if sampleRate <= 0 {
		return nil, synth.ErrInvalidSampleRate
	}
	if voice.Frequency < 0 {
		return nil, synth.ErrInvalidFrequency
	}

	return &VoiceSource{
		voice:      voice,
		sampleRate: sampleRate,
		limit:      limit,
		volume:     volume,
	}, nil
}

func (s *VoiceSource) SampleRate() int { return s.sampleRate }
func (s *VoiceSource) Close() error    { return nil }

func (s *VoiceSource) ReadSamples(dst []float64) (int, error) {
	n := len(dst)
	if s.limit > 0 {
		remaining := s.limit - s.pos
		if remaining <= 0 {
			return 0, io.EOF
		}
		if int64(n) > remaining {
			n = int(remaining)
		}
	}

	for i := 0; i < n; i++ {
		t := float64(s.pos+int64(i)) / float64(s.sampleRate)
		dst[i] = s.voice.Sample(t) * s.volume
	}
	s.pos += int64(n)

	if s.limit > 0 && s.pos >= s.limit {
		return n, io.EOF
	}
	return n, nil
}

// ChainSource streams a modulation chain, advancing its phase
// accumulators as samples are pulled.
type ChainSource struct {
	chain  *synth.ModulationChain
	limit  int64
	pos    int64
	volume float64
}

// NewChainSource wraps chain. The chain must not be stepped by anyone
// else while the source is in use.
func NewChainSource(chain *synth.ModulationChain, limit int64, volume float64) *ChainSource {
	return &ChainSource{chain: chain, limit: limit, volume: volume}
}

func (s *ChainSource) SampleRate() int { return s.chain.SampleRate() }
func (s *ChainSource) Close() error    { return nil }

func (s *ChainSource) ReadSamples(dst []float64) (int, error) {
	n := len(dst)
	if s.limit > 0 {
		remaining := s.limit - s.pos
		if remaining <= 0 {
			return 0, io.EOF
		}
		if int64(n) > remaining {
			n = int(remaining)
		}
	}

	for i := 0; i < n; i++ {
		dst[i] = s.chain.Step() * s.volume
	}
	s.pos += int64(n)

	if s.limit > 0 && s.pos >= s.limit {
		return n, io.EOF
	}
	return n, nil
}

// FilterSource low-passes another source in flight.
type FilterSource struct {
	src    Source
	filter *synth.LowPassFilter
}

// NewFilterSource filters src through a fresh one-pole low-pass at
// cutoff Hz.
func NewFilterSource(src Source, cutoff float64) (*FilterSource, error) {
	f, err := synth.NewLowPassFilter(cutoff, src.SampleRate())
	if err != nil {
		return nil, err
	}
	return &FilterSource{src: src, filter: f}, nil
}

func (s *FilterSource) SampleRate() int { return s.src.SampleRate() }
func (s *FilterSource) Close() error    { return s.src.Close() }

func (s *FilterSource) ReadSamples(dst []float64) (int, error) {
	n, err := s.src.ReadSamples(dst)
	for i := 0; i < n; i++ {
		dst[i] = s.filter.Step(dst[i])
	}
	return n, err
}

// BufferSource streams an already-materialized buffer, then io.EOF.
type BufferSource struct {
	buf        synth.Buffer
	sampleRate int
	pos        int
}

func NewBufferSource(buf synth.Buffer, sampleRate int) (*BufferSource, error) {
	if sampleRate <= 0 {
		return nil, synth.ErrInvalidSampleRate
	}
	return &BufferSource{buf: buf, sampleRate: sampleRate}, nil
}

func (s *BufferSource) SampleRate() int { return s.sampleRate }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= len(s.buf) {
		return 0, io.EOF
	}
	n := copy(dst, s.buf[s.pos:])
	s.pos += n
	if s.pos >= len(s.buf) {
		return n, io.EOF
	}
	return n, nil
}

// NoteSource streams a NoteMixer chunk by chunk, so a pull-based device
// callback can drive live polyphony. Note events must be applied from
// the same goroutine that reads samples.
type NoteSource struct {
	notes *synth.NoteMixer
}

func NewNoteSource(notes *synth.NoteMixer) *NoteSource {
	return &NoteSource{notes: notes}
}

func (s *NoteSource) SampleRate() int { return s.notes.SampleRate() }
func (s *NoteSource) Close() error    { return nil }

func (s *NoteSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	buf, err := s.notes.RenderSamples(len(dst))
	if err != nil {
		return 0, err
	}
	return copy(dst, buf), nil
}
