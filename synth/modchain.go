// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Modulator perturbs a carrier's instantaneous frequency. Depth is the
// maximum frequency deviation in Hz the modulator can impose; the
// deviation at any instant is the modulator waveform's current value
// (in [-1,1], or [0,1] for unipolar shapes) times Depth.
type Modulator struct {
	Kind      WaveformKind
	Frequency float64 // Hz
	Depth     float64 // Hz
}

func (m Modulator) validate() error {
	if !m.Kind.Valid() {
		return ErrInvalidWaveform
	}
	if m.Frequency < 0 || math.IsNaN(m.Frequency) || math.IsInf(m.Frequency, 0) {
		return ErrInvalidFrequency
	}
	if m.Depth < 0 || math.IsNaN(m.Depth) || math.IsInf(m.Depth, 0) {
		return ErrInvalidDepth
	}
	return nil
}

// ModulationChain frequency-modulates a carrier through an ordered
// sequence of modulator stages. Stage order matters: stage 0 perturbs
// the nominal carrier frequency, stage 1 perturbs the result of stage
// 0's effect, and so on. An empty chain reduces to the plain carrier.
//
// Because the carrier's frequency varies over time, its phase is
// integrated step by step (phase += instantaneous frequency / sample
// rate, wrapped into [0,1)) rather than recomputed from frequency*time.
// Each stage likewise owns a phase accumulator, since the stage is
// itself a waveform evaluated over time. This running state makes a
// chain single-caller: external synchronization is required if multiple
// goroutines step one instance.
type ModulationChain struct {
	carrier    Voice
	stages     []Modulator
	sampleRate int

	carrierPhase float64
	stagePhases  []float64
}

// NewModulationChain validates the carrier and every stage and returns
// a chain with all phase accumulators at zero. The stages slice is
// copied; later mutation of the caller's slice does not affect the
// chain.
func NewModulationChain(carrier Voice, stages []Modulator, sampleRate int) (*ModulationChain, error) {
	if err := carrier.validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	for _, s := range stages {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}

	return &ModulationChain{
		carrier:     carrier,
		stages:      append([]Modulator(nil), stages...),
		sampleRate:  sampleRate,
		stagePhases: make([]float64, len(stages)),
	}, nil
}

// SampleRate returns the rate the chain was created with.
func (c *ModulationChain) SampleRate() int { return c.sampleRate }

// Frequency returns the carrier's current instantaneous frequency: the
// nominal frequency plus each stage's deviation in order, evaluated at
// the stages' current phases. It does not advance any state.
func (c *ModulationChain) Frequency() float64 {
	freq := c.carrier.Frequency
	for i, s := range c.stages {
		freq += s.Kind.At(c.stagePhases[i]) * s.Depth
	}
	return freq
}

// Step produces the next sample and advances every phase accumulator by
// one sample period.
func (c *ModulationChain) Step() float64 {
	freq := c.carrier.Frequency
	for i, s := range c.stages {
		freq += s.Kind.At(c.stagePhases[i]) * s.Depth
		c.stagePhases[i] = wrapPhase(c.stagePhases[i] + s.Frequency/float64(c.sampleRate))
	}

	out := c.carrier.Kind.At(c.carrierPhase)
	c.carrierPhase = wrapPhase(c.carrierPhase + freq/float64(c.sampleRate))
	return out
}

// Render materializes duration seconds of the modulated carrier,
// advancing the chain's state. Consecutive Render calls continue where
// the previous one stopped.
func (c *ModulationChain) Render(duration float64) (Buffer, error) {
	n, err := renderLength(duration, c.sampleRate)
	if err != nil {
		return nil, err
	}

	buf := make(Buffer, n)
	for i := range buf {
		buf[i] = c.Step()
	}
	return buf, nil
}

func wrapPhase(p float64) float64 {
	if p >= 1 {
		p -= float64(int(p))
	} else if p < 0 {
		p -= float64(int(p)) - 1
	}
	return p
}
