// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/wavesynth/stream"
)

// Reader exposes a stream.Source as the byte stream an audio backend
// consumes: little-endian float32, mono.
type Reader struct {
	src stream.Source
	buf []float64
	eof bool
}

// NewReader wraps src. The returned reader yields io.EOF once the
// source is exhausted; infinite sources never end.
func NewReader(src stream.Source) *Reader {
	return &Reader{
		src: src,
		buf: make([]float64, 4096),
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	numSamples := len(p) / 4
	if numSamples == 0 {
		return 0, nil
	}
	if len(r.buf) < numSamples {
		r.buf = make([]float64, numSamples)
	}

	n, err := r.src.ReadSamples(r.buf[:numSamples])
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(float32(r.buf[i])))
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n * 4, nil
	}
	if err != nil {
		return n * 4, fmt.Errorf("%w", err)
	}
	return n * 4, nil
}

// Player delivers a stream.Source to the default audio device through
// oto. One Player owns one oto context; creating a second context in
// the same process is not supported by the backend.
type Player struct {
	ctx     *oto.Context
	player  *oto.Player
	mtx     sync.Mutex
	started bool
}

// NewPlayer opens the audio device at sampleRate, mono float32, and
// blocks until the backend is ready.
func NewPlayer(sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	return &Player{ctx: ctx}, nil
}

// Start begins pulling samples from src and playing them. A source
// whose rate differs from the device rate should be wrapped in a
// stream.Resampler first.
func (p *Player) Start(src stream.Source) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.started {
		return
	}
	p.player = p.ctx.NewPlayer(NewReader(src))
	p.player.Play()
	p.started = true
}

// IsPlaying reports whether the device is still consuming samples.
func (p *Player) IsPlaying() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.started && p.player != nil && p.player.IsPlaying()
}

// Close stops playback and releases the device player.
func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
		p.player = nil
	}
	p.started = false
	return nil
}
