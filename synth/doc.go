// SPDX-License-Identifier: EPL-2.0

// Package synth is the waveform synthesis, mixing and modulation core.
//
// It is a pure-computation layer: it turns (waveform kind, frequency,
// time) into sample values, combines voices with amplitude-safe
// normalization, and chains frequency-modulation stages. Audio devices,
// file export and MIDI byte parsing live elsewhere; this package only
// produces buffers of float64 samples in [-1,1].
//
// # Waveforms and Voices
//
// A WaveformKind is one of a closed set of periodic shapes evaluated
// over a normalized phase in [0,1):
//
//	s := synth.Sample(synth.Sine, 440, t)
//
// A Voice pairs a kind with a frequency and can render itself into a
// Buffer:
//
//	v := synth.Voice{Kind: synth.Square, Frequency: 220}
//	buf, err := v.Render(1.0, 44100)
//
// Voices are stateless: phase is derived from elapsed time, never
// stored, so a voice may be rendered repeatedly and concurrently.
//
// # Mixing
//
// Mixer sums buffers and normalizes by the peak amplitude reported by
// an AmplitudeEstimator:
//
//	m := synth.Mixer{}
//	out := m.Mix(a, b, c)
//
// Shorter inputs are zero-padded, and an all-zero sum (including the
// perfect cancellation of opposite-phase voices) is returned as-is
// rather than divided by zero. The estimator's fast mode bounds the
// scan work on large buffers at the cost of an unproven approximation
// error.
//
// # Frequency Modulation
//
// ModulationChain runs a carrier through ordered modulator stages, each
// perturbing the instantaneous frequency produced by the previous one.
// The chain integrates phase over time, which is the one place in the
// package that requires running state:
//
//	chain, _ := synth.NewModulationChain(
//		synth.Voice{Kind: synth.Sine, Frequency: 440},
//		[]synth.Modulator{{Kind: synth.Sine, Frequency: 1760, Depth: 22}},
//		44100,
//	)
//	buf, _ := chain.Render(1.0)
//
// # Filtering and Notes
//
// LowPassFilter is a stateful one-pole smoother over a sample stream.
// NoteMixer tracks active MIDI pitches and mixes one voice per note,
// with velocity mapped through a perceptual loudness curve.
//
// # Concurrency
//
// Everything here is synchronous. Stateless pieces (Sample, Voice,
// Mixer) are safe for concurrent use; stateful instances (a chain, a
// filter, a note mixer) must be advanced by one caller at a time.
package synth
