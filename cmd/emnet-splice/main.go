package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/easforge/emnet-splicer/internal/alerttime"
	"github.com/easforge/emnet-splicer/internal/assets"
	"github.com/easforge/emnet-splicer/internal/encode"
	"github.com/easforge/emnet-splicer/internal/header"
	"github.com/easforge/emnet-splicer/internal/same"
	"github.com/easforge/emnet-splicer/internal/splice"
	"github.com/easforge/emnet-splicer/internal/wave"
)

const (
	appName    = "emnet-splice"
	appVersion = "1.0.0"
)

func main() {
	// Parse flags
	output := flag.String("o", "", "Output file path for the spliced audio")
	flag.StringVar(output, "output", "", "Output file path for the spliced audio")

	zczc := flag.String("z", "", "ZCZC EAS header code to splice by")
	flag.StringVar(zczc, "zczc", "", "ZCZC EAS header code to splice by")

	localTime := flag.Bool("l", false, "Speak the purge time in local time instead of UTC")
	flag.BoolVar(localTime, "local-time", false, "Speak the purge time in local time instead of UTC")

	tzOverride := flag.String("O", "", "Timezone override by code (e.g. EST, PST); cannot be used with -l")
	flag.StringVar(tzOverride, "tz-override", "", "Timezone override by code; cannot be used with -l")

	includeTones := flag.Bool("t", false, "Include SAME bursts and attention tone")
	flag.BoolVar(includeTones, "include-tones", false, "Include SAME bursts and attention tone")

	altMessage := flag.Bool("alt", false, "Use the alternate event phrasing clip")

	year := flag.Int("year", 0, "Year for the header timestamp (default: current year)")

	assetDir := flag.String("assets", ".", "Asset library directory")

	rate := flag.Int("rate", wave.DefaultFormat.SampleRate, "Output sample rate in Hz")

	mp3 := flag.Bool("mp3", false, "Export MP3 (requires lame) with alert metadata tags")

	dryRun := flag.Bool("dry-run", false, "Print the segment plan, write nothing")

	verbose := flag.Bool("v", false, "Verbose output")
	flag.BoolVar(verbose, "verbose", false, "Verbose output")

	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -o <output.wav> -z <ZCZC-code> [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Splice EMnet audio clips into one alert message from a ZCZC header.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", appName, appVersion)
		return
	}

	if *output == "" || *zczc == "" {
		flag.Usage()
		os.Exit(1)
	}

	if *localTime && *tzOverride != "" {
		fmt.Fprintln(os.Stderr, "Error: cannot use -l/--local-time and -O/--tz-override together")
		os.Exit(1)
	}

	// Parse the header
	rec, err := header.Parse(*zczc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		printRecord(rec)
	}

	// Resolve issue and purge instants
	resolved, err := alerttime.Resolve(rec, alerttime.Options{
		Local: *localTime,
		Zone:  *tzOverride,
		Year:  *year,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Issued: %s\n", resolved.Issue.Format("Mon Jan 2 15:04 MST"))
		fmt.Printf("Purges: %s\n", resolved.Purge.Format("Mon Jan 2 15:04 MST"))
	}

	// Open the asset library and plan the splice
	store, err := assets.NewDirStore(*assetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plan, err := splice.Resolve(rec, resolved, store, splice.Options{
		UseAltMessage: *altMessage,
		IncludeTones:  *includeTones,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Println("Segment plan:")
		for i, seg := range plan {
			fmt.Printf("  %2d. %s\n", i+1, seg)
		}
		return
	}

	// Synthesize tone segments once; synthesis is pure, so each kind is
	// materialized a single time however often the plan repeats it.
	tones := make(splice.Tones)
	if *includeTones {
		burst, err := same.Burst(rec.Canonical(), *rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		eom, err := same.Burst(same.EOM, *rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tones[splice.ToneSameBurst] = burst
		tones[splice.ToneEOM] = eom
		tones[splice.ToneAttention] = same.AttentionTone(*rate)
	}

	// Assemble
	target := wave.Format{SampleRate: *rate, Channels: wave.DefaultFormat.Channels}
	combined, err := splice.Assemble(plan, store, tones, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Export
	if *mp3 {
		err = writeMP3(combined, *output, rec, resolved, *verbose)
	} else {
		err = os.WriteFile(*output, wave.Encode(combined), 0644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Spliced audio saved to %s (%s)\n", *output, combined.Duration().Round(time.Second))
}

func printRecord(rec header.Record) {
	fmt.Printf("%s - EAS header splicer\n", appName)
	fmt.Println(strings.Repeat("=", 50))

	event := rec.Event
	if name, ok := header.EventName(rec.Event); ok {
		event = fmt.Sprintf("%s (%s)", rec.Event, name)
	}
	originator := rec.Originator
	if name, ok := header.OriginatorName(rec.Originator); ok {
		originator = fmt.Sprintf("%s (%s)", rec.Originator, name)
	}

	fmt.Printf("Originator: %s\n", originator)
	fmt.Printf("Event: %s\n", event)
	fmt.Printf("Locations: %s\n", strings.Join(rec.FIPS, ", "))
	fmt.Printf("Duration: %dh%02dm\n", rec.PurgeMinutes/60, rec.PurgeMinutes%60)
	fmt.Printf("Sender: %s\n", rec.Sender)
}

func writeMP3(w wave.Waveform, output string, rec header.Record, resolved alerttime.Resolved, verbose bool) error {
	if !encode.LameAvailable() {
		return fmt.Errorf("lame not found; install lame or drop -mp3")
	}

	tempWAV := output + ".tmp.wav"
	if err := os.WriteFile(tempWAV, wave.Encode(w), 0644); err != nil {
		return err
	}
	defer os.Remove(tempWAV)

	opts := encode.DefaultOptions()
	opts.Verbose = verbose
	if err := encode.MP3(tempWAV, output, opts); err != nil {
		return err
	}

	tags := encode.BuildTags(encode.AlertMeta{Record: rec, Purge: resolved.Purge})
	if err := tags.Apply(output); err != nil {
		os.Remove(output)
		return err
	}
	return nil
}
