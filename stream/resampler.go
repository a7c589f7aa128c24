// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	"github.com/ik5/wavesynth/synth"
	"github.com/ik5/wavesynth/utils"
)

// Resampler converts a source stream to a different sample rate using
// cubic interpolation, for when the audio device runs at a rate other
// than the render rate. A simple one-pole low-pass is applied while
// downsampling to tame aliasing.
type Resampler struct {
	src     Source
	srcRate float64
	dstRate float64
	ratio   float64 // srcRate / dstRate: source samples per output sample

	// Window holding 4 samples for cubic interpolation:
	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window    [4]float64
	hasSample [4]bool

	// Position within the source stream, in source samples.
	pos float64

	srcBuf [1]float64
	eof    bool

	useFilter   bool
	filterAlpha float64
	filterState float64
}

// NewResampler wraps src, producing samples at dstRate.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, synth.ErrInvalidSampleRate
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:     src,
		srcRate: float64(src.SampleRate()),
		dstRate: float64(dstRate),
		ratio:   ratio,
	}
	if ratio > 1 {
		// Crude anti-aliasing for downsampling. A proper FIR would do
		// better; this keeps the worst of the fold-back out.
		r.useFilter = true
		r.filterAlpha = 0.5
	}
	return r, nil
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetchNext shifts the interpolation window and pulls one more source
// sample into its tail.
func (r *Resampler) fetchNext() error {
	if r.eof {
		return io.EOF
	}

	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.hasSample[0], r.hasSample[1], r.hasSample[2] = r.hasSample[1], r.hasSample[2], r.hasSample[3]

	n, err := r.src.ReadSamples(r.srcBuf[:])
	if n > 0 {
		s := r.srcBuf[0]
		if r.useFilter {
			s = r.filterAlpha*s + (1-r.filterAlpha)*r.filterState
			r.filterState = s
		}
		r.window[3] = s
		r.hasSample[3] = true
	} else {
		r.hasSample[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.hasSample[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf[:])
		if n > 0 {
			r.window[i] = r.srcBuf[0]
			r.hasSample[i] = true

			// Seed the filter with the first sample to avoid a warm-up
			// transient.
			if i == 0 && r.useFilter {
				r.filterState = r.srcBuf[0]
			}
		}
		if err == io.EOF {
			r.eof = true
			last := i
			if n > 0 {
				last = i + 1
			}
			if last == 0 {
				return io.EOF
			}
			for j := last; j < 4; j++ {
				r.window[j] = r.window[last-1]
				r.hasSample[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// ReadSamples produces dst samples at the destination rate.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if !r.hasSample[1] {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		// pos in [0,1) interpolates between window[1] and window[2].
		for r.pos >= 1 {
			r.pos--
			if err := r.fetchNext(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written, io.EOF
				}
				return written, err
			}
		}

		if !r.hasSample[1] || !r.hasSample[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written, io.EOF
		}

		y0 := r.window[1]
		if r.hasSample[0] {
			y0 = r.window[0]
		}
		y3 := r.window[2]
		if r.hasSample[3] {
			y3 = r.window[3]
		}

		dst[written] = utils.CubicInterpolate(y0, r.window[1], r.window[2], y3, r.pos)
		written++
		r.pos += r.ratio
	}

	return written, nil
}
