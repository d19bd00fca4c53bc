// Command ampdemo exercises the amp chain offline: it renders test tones
// through the distortion, tone-control and reverb stages and through every
// named preset, reports level and spectrum measurements, and writes the
// results as WAV files.
//
// Usage:
//
//	ampdemo [-rate 44100] [-dir .] [-duration 1.0] [-play]
//
// With -play the preset renders are also played through the default audio
// device.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-amp/amp"
	"github.com/cwbudde/algo-amp/dsp/core"
	"github.com/cwbudde/algo-amp/dsp/signal"
	"github.com/cwbudde/algo-amp/dsp/window"
	"github.com/cwbudde/algo-amp/internal/wavio"
	"github.com/cwbudde/algo-amp/measure/response"
	"github.com/cwbudde/algo-amp/preset"
)

func main() {
	rate := flag.Int("rate", 44100, "Sample rate in Hz")
	dir := flag.String("dir", ".", "Directory for rendered WAV files")
	duration := flag.Float64("duration", 1.0, "Tone duration in seconds")
	play := flag.Bool("play", false, "Play preset renders through the audio device")
	flag.Parse()

	if *rate < 1 {
		die("sample rate must be >= 1")
	}
	if *duration <= 0 {
		die("duration must be > 0")
	}

	d := &demo{
		rate:     *rate,
		dir:      *dir,
		duration: *duration,
		gen:      signal.NewGenerator(core.WithSampleRate(float64(*rate))),
	}

	d.distortionDemo()
	d.toneControlDemo()
	d.reverbDemo()
	renders := d.presetDemo()

	if *play {
		if err := playAll(*rate, renders); err != nil {
			die(err.Error())
		}
	}
}

type demo struct {
	rate     int
	dir      string
	duration float64
	gen      *signal.Generator
}

func (d *demo) newAmp() *amp.Amp {
	a, err := amp.New(core.WithSampleRate(float64(d.rate)))
	if err != nil {
		die(err.Error())
	}
	return a
}

func (d *demo) tone(freq float64) []float64 {
	t, err := d.gen.Tone(freq, 0.5, d.duration)
	if err != nil {
		die(err.Error())
	}
	return t
}

func (d *demo) process(a *amp.Amp, input []float64) []float64 {
	out := make([]float64, len(input))
	copy(out, input)
	if _, err := a.Process(out); err != nil {
		die(err.Error())
	}
	return out
}

func (d *demo) write(name string, samples []float64) {
	path := filepath.Join(d.dir, name)
	if err := wavio.WriteMono(path, samples, d.rate); err != nil {
		die(err.Error())
	}
	fmt.Printf("  wrote %s\n", path)
}

// distortionDemo renders a 440 Hz tone at increasing drive levels.
func (d *demo) distortionDemo() {
	fmt.Println("Distortion on a 440 Hz tone:")

	input := d.tone(440)
	w := newTable()
	fmt.Fprintln(w, "amount\tpeak\tRMS")

	for _, amount := range []float64{0, 0.3, 0.6, 0.9} {
		a := d.newAmp()
		a.SetParameters(amp.Update{Distortion: amp.Float(amount)})
		out := d.process(a, input)

		fmt.Fprintf(w, "%.1f\t%.3f\t%.3f\n", amount, core.Peak(out), core.RMS(out))
		d.write(fmt.Sprintf("distortion_%02.0f.wav", amount*10), out)
	}
	w.Flush()
	fmt.Println()
}

// toneControlDemo feeds a three-component tone through contrasting EQ
// settings and reports the amplitude of each component.
func (d *demo) toneControlDemo() {
	fmt.Println("Tone control on a 100 + 800 + 3000 Hz mix:")

	cfg := response.Config{
		SampleRate: float64(d.rate),
		FFTSize:    8192,
		WindowType: window.TypeHann,
	}

	low := d.tone(100)
	mid := d.tone(800)
	high := d.tone(3000)
	input := make([]float64, len(low))
	for i := range input {
		input[i] = (low[i] + mid[i] + high[i]) / 3
	}

	settings := []struct {
		name   string
		update amp.Update
	}{
		{"flat", amp.Update{}},
		{"bass boost", amp.Update{Bass: amp.Float(0.8)}},
		{"treble boost", amp.Update{Treble: amp.Float(0.8)}},
		{"mid scoop", amp.Update{Bass: amp.Float(0.5), Mid: amp.Float(-0.8), Treble: amp.Float(0.5)}},
	}

	w := newTable()
	fmt.Fprintln(w, "setting\t100 Hz\t800 Hz\t3 kHz")

	for _, s := range settings {
		a := d.newAmp()
		a.SetParameters(s.update)
		out := d.process(a, input)

		mags, err := response.Spectrum(out, cfg)
		if err != nil {
			die(err.Error())
		}

		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\n", s.name,
			mags[response.BinFor(100, cfg)],
			mags[response.BinFor(800, cfg)],
			mags[response.BinFor(3000, cfg)])
	}
	w.Flush()
	fmt.Println()
}

// reverbDemo measures how much energy the reverb tail carries after the
// dry tone ends.
func (d *demo) reverbDemo() {
	fmt.Println("Reverb tail after a 440 Hz burst:")

	burst := d.tone(440)
	w := newTable()
	fmt.Fprintln(w, "mix\ttail RMS")

	for _, mix := range []float64{0, 0.2, 0.5, 1} {
		a := d.newAmp()
		a.SetParameters(amp.Update{ReverbMix: amp.Float(mix)})

		d.process(a, burst)

		// Keep processing silence to expose the decaying tail.
		tail := make([]float64, d.rate/2)
		if _, err := a.Process(tail); err != nil {
			die(err.Error())
		}

		fmt.Fprintf(w, "%.1f\t%.5f\n", mix, core.RMS(tail))
	}
	w.Flush()
	fmt.Println()
}

// presetDemo renders the tone through every named preset.
func (d *demo) presetDemo() map[string][]float64 {
	fmt.Println("Presets on a 440 Hz tone:")

	input := d.tone(440)
	renders := make(map[string][]float64, len(preset.Names()))

	w := newTable()
	fmt.Fprintln(w, "preset\tpeak\tRMS")

	for _, name := range preset.Names() {
		u, ok := preset.Lookup(name)
		if !ok {
			die(fmt.Sprintf("preset %q missing", name))
		}

		a := d.newAmp()
		a.SetParameters(u)
		out := d.process(a, input)
		renders[name] = out

		fmt.Fprintf(w, "%s\t%.3f\t%.3f\n", name, core.Peak(out), core.RMS(out))
		d.write("preset_"+name+".wav", out)
	}
	w.Flush()
	fmt.Println()

	return renders
}

func playAll(rate int, renders map[string][]float64) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	for _, name := range preset.Names() {
		out, ok := renders[name]
		if !ok {
			continue
		}

		fmt.Printf("playing %s...\n", name)
		player := ctx.NewPlayer(bytes.NewReader(wavio.Float32LEStereoBytes(out)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			return err
		}
	}

	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "ampdemo:", msg)
	os.Exit(1)
}
