// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ik5/wavesynth/synth"
)

// WriteText dumps buf as space-separated decimal samples, the plain
// inspection format plotting tools expect: one long line, a trailing
// space after every value.
func WriteText(w io.Writer, buf synth.Buffer) error {
	bw := bufio.NewWriter(w)
	for _, s := range buf {
		if _, err := bw.WriteString(strconv.FormatFloat(s, 'g', -1, 64)); err != nil {
			return fmt.Errorf("%w", err)
		}
		if err := bw.WriteByte(' '); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Text is the Exporter for the plain-text sample dump.
type Text struct{}

func (Text) Export(w io.WriteSeeker, sampleRate int, buf synth.Buffer) error {
	return WriteText(w, buf)
}
