// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavesynth/synth"
	"github.com/ik5/wavesynth/utils"
)

// WriteWAV writes buf as a mono 16-bit PCM WAV file at sampleRate.
// Samples are clamped to [-1,1] before conversion, so an
// un-normalized buffer cannot overflow the PCM range.
func WriteWAV(w io.WriteSeeker, sampleRate int, buf synth.Buffer) error {
	if sampleRate <= 0 {
		return synth.ErrInvalidSampleRate
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	data := make([]int, len(buf))
	for i, s := range buf {
		data[i] = int(utils.FloatToInt16(s))
	}

	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WAV is the Exporter for 16-bit PCM WAV output.
type WAV struct{}

func (WAV) Export(w io.WriteSeeker, sampleRate int, buf synth.Buffer) error {
	return WriteWAV(w, sampleRate, buf)
}
