// Package wavio is the file I/O boundary of the amp: it loads WAV and MP3
// audio as mono float64 blocks and writes processed audio back out as WAV.
// Final output clipping to [-1, 1] happens here, not in the engine.
package wavio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Clip limits s to [-1, 1].
func Clip(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// ReadMono loads a WAV or MP3 file as mono samples in [-1, 1] and returns
// them with the file's sample rate. Multi-channel input is downmixed by
// averaging.
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return readWAV(f)
	case ".mp3":
		return readMP3(f)
	default:
		return nil, 0, fmt.Errorf("wavio: unsupported input format: %s", path)
	}
}

func readWAV(f *os.File) ([]float64, int, error) {
	dec := wav.NewDecoder(f)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, 0, fmt.Errorf("wavio: wav missing format info")
	}

	channels := buf.Format.NumChannels
	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))
	frames := len(buf.Data) / channels

	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch]) / scale
		}
		out[i] = sum / float64(channels)
	}

	return out, buf.Format.SampleRate, nil
}

func readMP3(f *os.File) ([]float64, int, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: read mp3: %w", err)
	}

	// go-mp3 always emits 16-bit little-endian stereo frames.
	frames := len(raw) / 4
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(raw[i*4:]))
		right := int16(binary.LittleEndian.Uint16(raw[i*4+2:]))
		out[i] = (float64(left) + float64(right)) / 2 / 32768
	}

	return out, dec.SampleRate(), nil
}

// WriteMono writes samples as a 16-bit mono WAV file, clipping every sample
// to [-1, 1] first.
func WriteMono(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(Clip(s) * 32767))
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return nil
}

// Float32LEStereoBytes converts mono samples to interleaved stereo float32
// little-endian bytes, the stream format the demo playback path feeds to the
// audio device.
func Float32LEStereoBytes(samples []float64) []byte {
	out := make([]byte, len(samples)*8)
	for i, s := range samples {
		bits := math.Float32bits(float32(Clip(s)))
		binary.LittleEndian.PutUint32(out[i*8:], bits)
		binary.LittleEndian.PutUint32(out[i*8+4:], bits)
	}
	return out
}
