package wavesynth

import (
	"fmt"
	"io"

	"github.com/ik5/wavesynth/stream"
	"github.com/ik5/wavesynth/utils"
)

// CollectPCM16 is a high-level convenience function that drains a
// sample stream into 16-bit PCM data, ready for WAV export or device
// delivery.
//
// Parameters:
//   - src: The stream to drain (a voice, a modulation chain, a filtered
//     stream, ...)
//   - maxSamples: Upper bound on collected samples; 0 means drain until
//     io.EOF. An infinite source with maxSamples == 0 never returns.
//   - bufferSize: Size of the pull buffer (e.g., 4096); larger buffers
//     cost memory and save calls
//
// Returns the collected samples (clamped to [-1,1] before scaling), the
// stream's sample rate, and any error other than io.EOF.
//
// Example:
//
//	src, _ := stream.NewVoiceSource(
//		synth.Voice{Kind: synth.Sine, Frequency: 440}, 44100, 44100, 1)
//	pcm16, rate, err := wavesynth.CollectPCM16(src, 0, 4096)
func CollectPCM16(src stream.Source, maxSamples int, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	rate := src.SampleRate()

	capacity := maxSamples
	if capacity == 0 {
		capacity = rate
	}
	pcm16 := make([]int16, 0, capacity)
	buf := make([]float64, bufferSize)

	for {
		want := len(buf)
		if maxSamples > 0 && maxSamples-len(pcm16) < want {
			want = maxSamples - len(pcm16)
		}
		if want == 0 {
			break
		}

		n, err := src.ReadSamples(buf[:want])
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.FloatToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, rate, nil
}
