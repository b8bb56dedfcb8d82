// Package same synthesizes the audio portions of the EAS SAME protocol:
// the AFSK data bursts that carry the ZCZC header and the two-tone
// attention signal. Everything here is a pure function of its arguments,
// so identical inputs always produce byte-identical samples.
package same

import (
	"fmt"
	"math"
	"time"

	"github.com/easforge/emnet-splicer/internal/wave"
)

// SAME digital framing constants. Each bit lasts 1920 microseconds
// (520.83 bits per second). A mark bit is four full sine cycles and a
// space bit is three, fixing the mark and space frequencies at exactly
// 4x and 3x the bit rate.
const (
	BitRate   = 3125.0 / 6.0 // 520.8333... bits/s
	MarkFreq  = 4 * BitRate  // 2083.33 Hz
	SpaceFreq = 3 * BitRate  // 1562.5 Hz

	preambleByte = 0xAB
	preambleLen  = 16

	// BurstRepeats is how many times each data burst is transmitted.
	// SAME has no error correction; receivers decode best two out of three.
	BurstRepeats = 3

	// BurstGap is the silence between repeated bursts.
	BurstGap = time.Second
)

// Attention signal constants: the EBS/EAS two-tone pair.
const (
	AttentionLowFreq  = 853 // Hz
	AttentionHighFreq = 960 // Hz

	AttentionDuration = 8 * time.Second

	// attentionRamp is the linear fade applied at both ends of the
	// attention signal to avoid clicks.
	attentionRamp = 20 * time.Millisecond
)

const (
	burstAmplitude = 0.8
	toneAmplitude  = 0.45 // per tone; the pair sums below full scale
)

// EOM is the end-of-message marker transmitted after the voice portion.
const EOM = "NNNN"

// Burst encodes a SAME message text into a single AFSK data burst.
// The text is sent byte-by-byte, least-significant bit first, prefixed
// with sixteen 0xAB preamble bytes and terminated with a carriage return.
//
// Bit boundaries are placed by rounding the cumulative bit time to the
// nearest sample, and the sine phase accumulates across bit boundaries,
// so there is no cumulative timing or phase error at any sample rate.
func Burst(text string, sampleRate int) (wave.Waveform, error) {
	if text == "" {
		return wave.Waveform{}, fmt.Errorf("burst text is empty")
	}
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return wave.Waveform{}, fmt.Errorf("burst text is not ASCII at byte %d", i)
		}
	}

	payload := make([]byte, 0, preambleLen+len(text)+1)
	for i := 0; i < preambleLen; i++ {
		payload = append(payload, preambleByte)
	}
	payload = append(payload, text...)
	payload = append(payload, '\r')

	totalBits := len(payload) * 8
	totalSamples := bitBoundary(totalBits, sampleRate)

	out := wave.Waveform{
		SampleRate: sampleRate,
		Channels:   1,
		Samples:    make([]int16, 0, totalSamples),
	}

	phase := 0.0
	bit := 0
	for _, b := range payload {
		for i := 0; i < 8; i++ {
			freq := SpaceFreq
			if (b>>i)&1 == 1 {
				freq = MarkFreq
			}

			step := 2 * math.Pi * freq / float64(sampleRate)
			end := bitBoundary(bit+1, sampleRate)
			for len(out.Samples) < end {
				out.Samples = append(out.Samples, int16(burstAmplitude*math.Sin(phase)*32767))
				phase += step
			}
			bit++
		}
	}

	return out, nil
}

// BurstSequence repeats a burst with silence gaps between repeats,
// per protocol framing.
func BurstSequence(text string, sampleRate, repeats int) (wave.Waveform, error) {
	burst, err := Burst(text, sampleRate)
	if err != nil {
		return wave.Waveform{}, err
	}
	gap := wave.Silence(BurstGap, burst.Format())

	parts := make([]wave.Waveform, 0, 2*repeats-1)
	for i := 0; i < repeats; i++ {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, burst)
	}
	return wave.Concat(burst.Format(), parts...)
}

// AttentionTone synthesizes the dual-frequency attention signal:
// 853 Hz and 960 Hz summed for eight seconds, with a short linear
// ramp in and out.
func AttentionTone(sampleRate int) wave.Waveform {
	frames := int(AttentionDuration * time.Duration(sampleRate) / time.Second)
	rampFrames := int(attentionRamp * time.Duration(sampleRate) / time.Second)

	out := wave.Waveform{
		SampleRate: sampleRate,
		Channels:   1,
		Samples:    make([]int16, frames),
	}

	stepLow := 2 * math.Pi * AttentionLowFreq / float64(sampleRate)
	stepHigh := 2 * math.Pi * AttentionHighFreq / float64(sampleRate)

	phaseLow, phaseHigh := 0.0, 0.0
	for i := 0; i < frames; i++ {
		v := toneAmplitude*math.Sin(phaseLow) + toneAmplitude*math.Sin(phaseHigh)

		gain := 1.0
		if i < rampFrames {
			gain = float64(i) / float64(rampFrames)
		} else if left := frames - 1 - i; left < rampFrames {
			gain = float64(left) / float64(rampFrames)
		}

		out.Samples[i] = int16(v * gain * 32767)
		phaseLow += stepLow
		phaseHigh += stepHigh
	}

	return out
}

// bitBoundary returns the sample index where the given bit count ends.
// Rounding the cumulative time rather than a fixed per-bit sample count
// keeps long bursts aligned with the 520.83 baud clock.
func bitBoundary(bits, sampleRate int) int {
	return int(math.Round(float64(bits) * float64(sampleRate) / BitRate))
}
