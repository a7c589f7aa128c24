// SPDX-License-Identifier: EPL-2.0

package export

import (
	"io"
	"sync"

	"github.com/ik5/wavesynth/synth"
)

// Exporter writes a materialized sample buffer to w in some format.
type Exporter interface {
	Export(w io.WriteSeeker, sampleRate int, buf synth.Buffer) error
}

// Registry maps format keys (e.g., "wav", "txt", "html") to exporters.
type Registry struct {
	formats map[string]Exporter

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Exporter),
		mtx:     &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry with all built-in exporters
// registered under their usual file extensions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAV{})
	r.Register("txt", Text{})
	r.Register("html", Chart{})
	return r
}

func (r *Registry) Register(format string, e Exporter) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[format] = e
}

func (r *Registry) Get(format string) (Exporter, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.formats[format]
	return e, ok
}
