// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ik5/wavesynth/synth"
)

// maxChartPoints bounds how many samples end up in one HTML chart.
// Browsers choke on a full second of 44.1kHz points, so longer buffers
// are stride-sampled down to this many.
const maxChartPoints = 2048

// WriteChart renders buf as a self-contained HTML line chart, the
// quick-look replacement for piping a text dump into a plotting
// script. The x axis is labeled in seconds.
func WriteChart(w io.Writer, sampleRate int, buf synth.Buffer) error {
	if sampleRate <= 0 {
		return synth.ErrInvalidSampleRate
	}

	step := 1
	if len(buf) > maxChartPoints {
		step = (len(buf) + maxChartPoints - 1) / maxChartPoints
	}

	xs := make([]string, 0, maxChartPoints)
	ys := make([]opts.LineData, 0, maxChartPoints)
	for i := 0; i < len(buf); i += step {
		xs = append(xs, strconv.FormatFloat(float64(i)/float64(sampleRate), 'f', 5, 64))
		ys = append(ys, opts.LineData{Value: buf[i]})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "samples",
			Subtitle: fmt.Sprintf("%d samples @ %d Hz", len(buf), sampleRate),
		}),
	)
	line.SetXAxis(xs).AddSeries("amplitude", ys)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Chart is the Exporter for the HTML line chart.
type Chart struct{}

func (Chart) Export(w io.WriteSeeker, sampleRate int, buf synth.Buffer) error {
	return WriteChart(w, sampleRate, buf)
}
