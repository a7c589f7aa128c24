// SPDX-License-Identifier: EPL-2.0

// Package stream adapts the synthesis core to pull-based consumption.
//
// A Source delivers mono float64 samples in [-1,1] on demand, the shape
// an audio device callback or an export loop wants:
//
//	src, _ := stream.NewVoiceSource(
//		synth.Voice{Kind: synth.Sine, Frequency: 440}, 44100, 0, 0.5)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Sources exist for stateless voices, modulation chains, note mixers
// and materialized buffers. FilterSource low-passes any other source in
// flight, and Resampler converts a stream to a different rate with
// cubic interpolation when the device rate differs from the render
// rate.
//
// Finite sources return io.EOF exactly when exhausted, following the
// usual convention:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package stream
