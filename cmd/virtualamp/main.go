// Command virtualamp processes a guitar recording through the virtual
// amplifier chain.
//
// Usage:
//
//	virtualamp -in guitar.wav [-out processed.wav] [-preset crunch] [-batch]
//
// Without -batch it starts an interactive prompt where amp controls can be
// adjusted before rendering:
//
//	preset <name>  load a preset (clean, crunch, overdrive, distortion, metal)
//	gain <value>   set gain (0.1 - 5.0)
//	dist <value>   set distortion (0.0 - 1.0)
//	bass <value>   set bass EQ (-1.0 to 1.0)
//	mid <value>    set mid EQ (-1.0 to 1.0)
//	treble <value> set treble EQ (-1.0 to 1.0)
//	reverb <value> set reverb mix (0.0 - 1.0)
//	status         show current settings
//	presets        list available presets
//	render         process the input file and write the output
//	quit           exit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-amp/amp"
	"github.com/cwbudde/algo-amp/dsp/core"
	"github.com/cwbudde/algo-amp/internal/wavio"
	"github.com/cwbudde/algo-amp/preset"
)

func main() {
	inPath := flag.String("in", "", "Input WAV or MP3 file")
	outPath := flag.String("out", "processed.wav", "Output WAV file")
	blockSize := flag.Int("block", 1024, "Processing block size in samples")
	presetName := flag.String("preset", "", "Preset to load at startup")
	batch := flag.Bool("batch", false, "Render immediately and exit")
	flag.Parse()

	if *inPath == "" {
		die("missing -in file")
	}
	if *blockSize < 1 {
		die("block size must be >= 1")
	}

	samples, rate, err := wavio.ReadMono(*inPath)
	if err != nil {
		die(err.Error())
	}

	engine, err := amp.New(
		core.WithSampleRate(float64(rate)),
		core.WithBlockSize(*blockSize),
	)
	if err != nil {
		die(err.Error())
	}

	if *presetName != "" {
		if !loadPreset(engine, *presetName) {
			os.Exit(1)
		}
	}

	session := &session{
		engine:    engine,
		input:     samples,
		rate:      rate,
		blockSize: *blockSize,
		outPath:   *outPath,
	}

	if *batch {
		if err := session.render(); err != nil {
			die(err.Error())
		}
		return
	}

	fmt.Printf("virtualamp: %s (%d Hz, %d samples)\n", *inPath, rate, len(samples))
	fmt.Println("Type 'help' for commands.")
	session.repl()
}

type session struct {
	engine    *amp.Amp
	input     []float64
	rate      int
	blockSize int
	outPath   string
}

func (s *session) repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("amp> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		if !s.handle(strings.Fields(strings.ToLower(scanner.Text()))) {
			return
		}
	}
}

func (s *session) handle(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		printHelp()
	case "status":
		s.printStatus()
	case "presets":
		fmt.Printf("Available presets: %s\n", strings.Join(preset.Names(), ", "))
	case "preset":
		if len(args) < 2 {
			fmt.Println("Usage: preset <name>")
			break
		}
		if loadPreset(s.engine, args[1]) {
			fmt.Printf("Loaded preset: %s\n", args[1])
		}
	case "gain":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{Gain: amp.Float(v)} })
	case "dist", "distortion":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{Distortion: amp.Float(v)} })
	case "bass":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{Bass: amp.Float(v)} })
	case "mid":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{Mid: amp.Float(v)} })
	case "treble":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{Treble: amp.Float(v)} })
	case "reverb":
		s.setControl(args, func(v float64) amp.Update { return amp.Update{ReverbMix: amp.Float(v)} })
	case "render":
		if err := s.render(); err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		}
	default:
		fmt.Printf("Unknown command %q. Type 'help' for commands.\n", args[0])
	}

	return true
}

func (s *session) setControl(args []string, update func(float64) amp.Update) {
	if len(args) < 2 {
		fmt.Printf("Usage: %s <value>\n", args[0])
		return
	}

	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("Invalid value. Must be a number.")
		return
	}

	// Out-of-range values are clamped by the engine, not rejected.
	s.engine.SetParameters(update(v))
	s.printStatus()
}

func (s *session) printStatus() {
	p := s.engine.Parameters()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Gain:\t%.2f\n", p.Gain)
	fmt.Fprintf(w, "Distortion:\t%.2f\n", p.Distortion)
	fmt.Fprintf(w, "Bass:\t%.2f\n", p.Bass)
	fmt.Fprintf(w, "Mid:\t%.2f\n", p.Mid)
	fmt.Fprintf(w, "Treble:\t%.2f\n", p.Treble)
	fmt.Fprintf(w, "Reverb:\t%.2f\n", p.ReverbMix)
	w.Flush()
}

// render streams the input through the chain block by block, resetting the
// engine state first so repeated renders start from silence.
func (s *session) render() error {
	s.engine.Reset()

	out := make([]float64, len(s.input))
	copy(out, s.input)

	for start := 0; start < len(out); start += s.blockSize {
		end := start + s.blockSize
		if end > len(out) {
			end = len(out)
		}
		if _, err := s.engine.Process(out[start:end]); err != nil {
			return err
		}
	}

	if err := wavio.WriteMono(s.outPath, out, s.rate); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d samples)\n", s.outPath, len(out))
	return nil
}

func loadPreset(engine *amp.Amp, name string) bool {
	u, ok := preset.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Preset %q not found. Available: %s\n",
			name, strings.Join(preset.Names(), ", "))
		return false
	}
	engine.SetParameters(u)
	return true
}

func printHelp() {
	fmt.Println(`Commands:
  preset <name>  - load a preset (clean, crunch, overdrive, distortion, metal)
  gain <value>   - set gain (0.1 - 5.0)
  dist <value>   - set distortion (0.0 - 1.0)
  bass <value>   - set bass EQ (-1.0 to 1.0)
  mid <value>    - set mid EQ (-1.0 to 1.0)
  treble <value> - set treble EQ (-1.0 to 1.0)
  reverb <value> - set reverb mix (0.0 - 1.0)
  status         - show current settings
  presets        - list available presets
  render         - process the input file and write the output
  quit           - exit`)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "virtualamp:", msg)
	os.Exit(1)
}
