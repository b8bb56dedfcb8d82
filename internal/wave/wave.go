// Package wave holds the in-memory waveform model shared by the splicing
// pipeline: 16-bit signed PCM, interleaved when stereo. Segments from the
// asset library and the tone synthesizer are normalized to a common format
// here before concatenation.
package wave

import (
	"fmt"
	"time"
)

// Format describes the PCM layout of a waveform.
type Format struct {
	SampleRate int // Hz
	Channels   int // 1 = mono, 2 = stereo
}

// DefaultFormat is the output format of the splicer: mono 44.1kHz,
// matching the EMnet asset library.
var DefaultFormat = Format{SampleRate: 44100, Channels: 1}

// Waveform is a decoded audio segment: 16-bit signed samples,
// channel-interleaved.
type Waveform struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// FormatError indicates a segment whose PCM layout cannot be normalized
// to the target format.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	return "incompatible audio format: " + e.Detail
}

// Format returns the PCM layout of the waveform.
func (w Waveform) Format() Format {
	return Format{SampleRate: w.SampleRate, Channels: w.Channels}
}

// Frames returns the number of sample frames (samples per channel).
func (w Waveform) Frames() int {
	if w.Channels == 0 {
		return 0
	}
	return len(w.Samples) / w.Channels
}

// Duration returns the playing time of the waveform.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate == 0 {
		return 0
	}
	return time.Duration(w.Frames()) * time.Second / time.Duration(w.SampleRate)
}

// Silence creates a waveform of silence with the given duration and format.
func Silence(d time.Duration, f Format) Waveform {
	frames := int(d * time.Duration(f.SampleRate) / time.Second)
	return Waveform{
		SampleRate: f.SampleRate,
		Channels:   f.Channels,
		Samples:    make([]int16, frames*f.Channels),
	}
}

// Normalize converts a waveform to the target format, remixing channels
// and resampling as needed. This is a pure function: the input waveform
// is never modified.
//
// Supported conversions: mono <-> stereo and any sample rate change
// (linear interpolation). Anything else fails with *FormatError.
func Normalize(w Waveform, target Format) (Waveform, error) {
	if w.SampleRate <= 0 || w.Channels <= 0 {
		return Waveform{}, &FormatError{Detail: fmt.Sprintf("invalid source format %dHz/%dch", w.SampleRate, w.Channels)}
	}
	if w.Channels > 2 || target.Channels < 1 || target.Channels > 2 {
		return Waveform{}, &FormatError{Detail: fmt.Sprintf("unsupported channel count %d -> %d", w.Channels, target.Channels)}
	}

	out := w
	if out.Channels != target.Channels {
		out = remix(out, target.Channels)
	}
	if out.SampleRate != target.SampleRate {
		out = resample(out, target.SampleRate)
	}
	return out, nil
}

// Concat normalizes each waveform to the target format and joins them in
// order with no implicit gaps.
func Concat(target Format, waves ...Waveform) (Waveform, error) {
	total := 0
	for _, w := range waves {
		total += len(w.Samples) // upper-bound estimate before normalization
	}

	out := Waveform{SampleRate: target.SampleRate, Channels: target.Channels}
	out.Samples = make([]int16, 0, total)

	for i, w := range waves {
		n, err := Normalize(w, target)
		if err != nil {
			return Waveform{}, fmt.Errorf("segment %d: %w", i, err)
		}
		out.Samples = append(out.Samples, n.Samples...)
	}
	return out, nil
}

// remix converts between mono and stereo. Stereo to mono averages the
// two channels; mono to stereo duplicates the channel.
func remix(w Waveform, channels int) Waveform {
	frames := w.Frames()
	out := Waveform{SampleRate: w.SampleRate, Channels: channels, Samples: make([]int16, frames*channels)}

	switch {
	case w.Channels == 2 && channels == 1:
		for i := 0; i < frames; i++ {
			l := int(w.Samples[2*i])
			r := int(w.Samples[2*i+1])
			out.Samples[i] = int16((l + r) / 2)
		}
	case w.Channels == 1 && channels == 2:
		for i := 0; i < frames; i++ {
			out.Samples[2*i] = w.Samples[i]
			out.Samples[2*i+1] = w.Samples[i]
		}
	default:
		copy(out.Samples, w.Samples)
	}
	return out
}

// resample converts the sample rate by linear interpolation per channel.
func resample(w Waveform, rate int) Waveform {
	srcFrames := w.Frames()
	dstFrames := int(int64(srcFrames) * int64(rate) / int64(w.SampleRate))
	out := Waveform{SampleRate: rate, Channels: w.Channels, Samples: make([]int16, dstFrames*w.Channels)}

	if srcFrames == 0 {
		return out
	}

	ratio := float64(w.SampleRate) / float64(rate)
	for i := 0; i < dstFrames; i++ {
		pos := float64(i) * ratio
		j := int(pos)
		frac := pos - float64(j)

		k := j + 1
		if k >= srcFrames {
			k = srcFrames - 1
		}

		for c := 0; c < w.Channels; c++ {
			a := float64(w.Samples[j*w.Channels+c])
			b := float64(w.Samples[k*w.Channels+c])
			out.Samples[i*w.Channels+c] = int16(a + (b-a)*frac)
		}
	}
	return out
}
