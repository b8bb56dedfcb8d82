// emnet-tones synthesizes the EAS tone waveforms on their own: the SAME
// data burst for a header (or any text) and the attention signal.
// Useful for checking the synthesizer output against a real decoder.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/easforge/emnet-splicer/internal/same"
	"github.com/easforge/emnet-splicer/internal/wave"
)

func main() {
	output := flag.String("o", "", "Output WAV file path")
	flag.StringVar(output, "output", "", "Output WAV file path")

	text := flag.String("z", "", "SAME message text to encode (e.g. a full ZCZC header, or NNNN)")
	flag.StringVar(text, "zczc", "", "SAME message text to encode")

	attention := flag.Bool("attention", false, "Synthesize the attention tone instead of a data burst")

	repeats := flag.Int("repeats", same.BurstRepeats, "Number of burst repeats")

	rate := flag.Int("rate", wave.DefaultFormat.SampleRate, "Sample rate in Hz")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -o <output.wav> (-z <text> | -attention) [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Synthesize SAME data bursts or the EAS attention tone to a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *output == "" || (*text == "" && !*attention) {
		flag.Usage()
		os.Exit(1)
	}

	var w wave.Waveform
	if *attention {
		w = same.AttentionTone(*rate)
	} else {
		var err error
		w, err = same.BurstSequence(*text, *rate, *repeats)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*output, wave.Encode(w), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%s at %d Hz)\n", *output, w.Duration().Round(time.Millisecond), w.SampleRate)
}
