// SPDX-License-Identifier: EPL-2.0

// Command wavesynth renders, plays and exports synthesized waveforms.
//
// Mix two sines, low-pass them and play for two seconds:
//
//	wavesynth -voices sine@440,sine@4400 -cutoff 441 -duration 2
//
// FM-modulate a carrier and write inspection artifacts instead of
// playing:
//
//	wavesynth -carrier sine@440 -modulators sine@1760:22,sine@480:22 \
//	    -generate-arrays -out samples
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/wavesynth/export"
	"github.com/ik5/wavesynth/playback"
	"github.com/ik5/wavesynth/stream"
	"github.com/ik5/wavesynth/synth"
)

// The originals drive the DAC well below unity to leave headroom.
const outputVolume = 1.0 / 3.0

type config struct {
	voices     []synth.Voice
	carrier    *synth.Voice
	modulators []synth.Modulator

	sampleRate int
	duration   float64
	cutoff     float64

	fastAmplitude bool
	capScan       bool
	generate      bool
	outPrefix     string
	quiet         bool
}

func parseKind(s string) (synth.WaveformKind, error) {
	switch strings.ToLower(s) {
	case "silence":
		return synth.Silence, nil
	case "sine":
		return synth.Sine, nil
	case "square":
		return synth.Square, nil
	case "sawtooth", "saw":
		return synth.Sawtooth, nil
	case "triangle", "tri":
		return synth.Triangle, nil
	case "onoff":
		return synth.OnOff, nil
	}
	return 0, fmt.Errorf("%w: %q", synth.ErrInvalidWaveform, s)
}

// parseVoice parses "kind@frequency", e.g. "sine@440".
func parseVoice(s string) (synth.Voice, error) {
	kindStr, freqStr, ok := strings.Cut(s, "@")
	if !ok {
		return synth.Voice{}, fmt.Errorf("voice %q: want kind@frequency", s)
	}
	kind, err := parseKind(kindStr)
	if err != nil {
		return synth.Voice{}, err
	}
	freq, err := strconv.ParseFloat(freqStr, 64)
	if err != nil {
		return synth.Voice{}, fmt.Errorf("voice %q: %w", s, err)
	}
	return synth.Voice{Kind: kind, Frequency: freq}, nil
}

// parseModulator parses "kind@frequency:depth", e.g. "sine@1760:22".
func parseModulator(s string) (synth.Modulator, error) {
	voicePart, depthStr, ok := strings.Cut(s, ":")
	if !ok {
		return synth.Modulator{}, fmt.Errorf("modulator %q: want kind@frequency:depth", s)
	}
	v, err := parseVoice(voicePart)
	if err != nil {
		return synth.Modulator{}, err
	}
	depth, err := strconv.ParseFloat(depthStr, 64)
	if err != nil {
		return synth.Modulator{}, fmt.Errorf("modulator %q: %w", s, err)
	}
	return synth.Modulator{Kind: v.Kind, Frequency: v.Frequency, Depth: depth}, nil
}

func parseFlags() (*config, error) {
	var (
		voicesFlag  = flag.String("voices", "", "comma-separated voices to mix, kind@frequency")
		carrierFlag = flag.String("carrier", "", "FM carrier, kind@frequency")
		modsFlag    = flag.String("modulators", "", "comma-separated FM stages, kind@frequency:depth")
		rate        = flag.Int("rate", 44100, "sample rate in Hz")
		duration    = flag.Float64("duration", 1, "seconds to render or play")
		cutoff      = flag.Float64("cutoff", 0, "low-pass cutoff in Hz, 0 disables the filter")
		fast        = flag.Bool("fast-amplitude", false, "estimate peak amplitude from a bounded sample scan")
		capScan     = flag.Bool("cap-scan", true, "bound the exact amplitude scan window to one second")
		generate    = flag.Bool("generate-arrays", false, "write <out>.txt, <out>.wav and <out>.html instead of playing")
		out         = flag.String("out", "samples", "output file prefix for -generate-arrays")
		quiet       = flag.Bool("quiet", false, "suppress progress output")
	)
	flag.Parse()

	cfg := &config{
		sampleRate:    *rate,
		duration:      *duration,
		cutoff:        *cutoff,
		fastAmplitude: *fast,
		capScan:       *capScan,
		generate:      *generate,
		outPrefix:     *out,
		quiet:         *quiet,
	}

	for _, s := range splitList(*voicesFlag) {
		v, err := parseVoice(s)
		if err != nil {
			return nil, err
		}
		cfg.voices = append(cfg.voices, v)
	}
	if *carrierFlag != "" {
		v, err := parseVoice(*carrierFlag)
		if err != nil {
			return nil, err
		}
		cfg.carrier = &v
	}
	for _, s := range splitList(*modsFlag) {
		m, err := parseModulator(s)
		if err != nil {
			return nil, err
		}
		cfg.modulators = append(cfg.modulators, m)
	}

	if cfg.carrier == nil && len(cfg.voices) == 0 {
		return nil, fmt.Errorf("nothing to play: give -voices or -carrier")
	}
	if cfg.carrier != nil && len(cfg.voices) > 0 {
		return nil, fmt.Errorf("-voices and -carrier are mutually exclusive")
	}
	if len(cfg.modulators) > 0 && cfg.carrier == nil {
		return nil, fmt.Errorf("-modulators needs a -carrier")
	}
	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// render materializes the configured signal.
func render(cfg *config) (synth.Buffer, error) {
	est := synth.AmplitudeEstimator{Fast: cfg.fastAmplitude}

	if cfg.carrier != nil {
		chain, err := synth.NewModulationChain(*cfg.carrier, cfg.modulators, cfg.sampleRate)
		if err != nil {
			return nil, err
		}
		buf, err := chain.Render(cfg.duration)
		if err != nil {
			return nil, err
		}
		for i := range buf {
			buf[i] *= outputVolume
		}
		return buf, nil
	}

	if !cfg.quiet {
		period := synth.CombinedPeriod(cfg.voices, cfg.sampleRate, cfg.capScan)
		log.Printf("combined period: %d samples", period)
	}

	mixer := synth.Mixer{Estimator: est}
	buf, err := mixer.MixVoices(cfg.voices, cfg.duration, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	if cfg.cutoff > 0 {
		filter, err := synth.NewLowPassFilter(cfg.cutoff, cfg.sampleRate)
		if err != nil {
			return nil, err
		}
		buf = filter.Process(buf)
	}
	return buf, nil
}

func generateArrays(cfg *config, buf synth.Buffer) error {
	reg := export.DefaultRegistry()

	for _, format := range []string{"txt", "wav", "html"} {
		e, ok := reg.Get(format)
		if !ok {
			return fmt.Errorf("no exporter for %q", format)
		}

		name := cfg.outPrefix + "." + format
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := e.Export(f, cfg.sampleRate, buf); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if !cfg.quiet {
			log.Printf("wrote %s", name)
		}
	}
	return nil
}

func play(cfg *config, buf synth.Buffer) error {
	// The FM path scaled its output already; the normalized mix plays
	// at unit peak unless attenuated here.
	if cfg.carrier == nil {
		scaled := make(synth.Buffer, len(buf))
		for i, s := range buf {
			scaled[i] = s * outputVolume
		}
		buf = scaled
	}

	src, err := stream.NewBufferSource(buf, cfg.sampleRate)
	if err != nil {
		return err
	}

	player, err := playback.NewPlayer(cfg.sampleRate)
	if err != nil {
		return err
	}
	defer player.Close()

	player.Start(src)
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wavesynth: ")

	cfg, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.quiet {
		for _, v := range cfg.voices {
			log.Printf("voice: %s @ %g Hz", v.Kind, v.Frequency)
		}
		if cfg.carrier != nil {
			log.Printf("carrier: %s @ %g Hz", cfg.carrier.Kind, cfg.carrier.Frequency)
			for _, m := range cfg.modulators {
				log.Printf("modulator: %s @ %g Hz, depth %g Hz", m.Kind, m.Frequency, m.Depth)
			}
		}
	}

	buf, err := render(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.generate {
		if err := generateArrays(cfg, buf); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := play(cfg, buf); err != nil {
		log.Fatal(err)
	}
}
