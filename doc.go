// SPDX-License-Identifier: EPL-2.0

// Package wavesynth generates, combines and modulates periodic audio
// waveforms in software.
//
// The module is split into a pure synthesis core and thin collaborator
// layers around it:
//
//   - synth: waveform evaluation, amplitude estimation, mixing with
//     normalization, frequency-modulation chains, one-pole low-pass
//     filtering, and MIDI-note polyphony (the core)
//   - stream: pull-based Source adapters over the core, plus a cubic
//     resampler for rate conversion
//   - export: WAV, plain-text and HTML-chart output of rendered buffers
//   - playback: audio device delivery of a stream
//   - midi: decoded note events and pitch/velocity conversions
//
// # Quick Start
//
// Render one second of a 440 Hz sine and collect it as 16-bit PCM:
//
//	src, _ := stream.NewVoiceSource(
//		synth.Voice{Kind: synth.Sine, Frequency: 440},
//		44100, 44100, 0.5)
//	pcm16, rate, _ := wavesynth.CollectPCM16(src, 0, 4096)
//
// Or materialize a buffer directly and write it as a WAV file:
//
//	buf, _ := synth.Voice{Kind: synth.Sine, Frequency: 440}.Render(1.0, 44100)
//	f, _ := os.Create("tone.wav")
//	export.WriteWAV(f, 44100, buf)
//
// # FM Synthesis
//
// A modulation chain perturbs a carrier's instantaneous frequency
// through an ordered list of modulators:
//
//	chain, _ := synth.NewModulationChain(
//		synth.Voice{Kind: synth.Sine, Frequency: 440},
//		[]synth.Modulator{
//			{Kind: synth.Sine, Frequency: 1760, Depth: 22},
//			{Kind: synth.Sine, Frequency: 480, Depth: 22},
//		},
//		44100,
//	)
//	buf, _ := chain.Render(1.0)
//
// # Sample Format
//
// All synthesis happens in float64 with samples nominally in [-1,1];
// conversion to 16-bit PCM or device float32 happens only at the
// export/playback boundary.
//
// See the subpackage documentation for details.
package wavesynth
