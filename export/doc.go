// SPDX-License-Identifier: EPL-2.0

// Package export writes materialized sample buffers to inspection and
// playback artifacts.
//
// Three formats are built in:
//   - WAV (mono 16-bit PCM) via WriteWAV
//   - plain-text sample dump via WriteText
//   - self-contained HTML line chart via WriteChart
//
// Exporters can also be looked up by format key through a Registry:
//
//	reg := export.DefaultRegistry()
//	e, _ := reg.Get("wav")
//	err := e.Export(file, 44100, buf)
//
// WAV output uses an io.WriteSeeker because the encoder patches chunk
// sizes into the header after the data is written; the other formats
// only need to stream forward.
package export
