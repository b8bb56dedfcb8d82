// Package splice turns a parsed header into an ordered segment plan and
// assembles the planned segments into one waveform.
package splice

import (
	"fmt"
	"strings"
	"time"

	"github.com/binaryphile/fluentfp/slice"

	"github.com/easforge/emnet-splicer/internal/alerttime"
	"github.com/easforge/emnet-splicer/internal/assets"
	"github.com/easforge/emnet-splicer/internal/header"
)

// ToneKind selects a synthesized segment.
type ToneKind int

const (
	ToneSameBurst ToneKind = iota // AFSK burst carrying the header
	ToneAttention                 // 853+960 Hz attention signal
	ToneEOM                       // AFSK burst carrying "NNNN"
)

func (k ToneKind) String() string {
	switch k {
	case ToneSameBurst:
		return "same-burst"
	case ToneAttention:
		return "attention-tone"
	case ToneEOM:
		return "eom-burst"
	default:
		return fmt.Sprintf("tone(%d)", int(k))
	}
}

// Segment is one entry in a splice plan: a library clip, a synthesized
// tone, or explicit silence.
type Segment interface {
	fmt.Stringer
	segment()
}

// File is a clip loaded from the asset library.
type File struct {
	Key assets.Key
}

// Tone is a synthesized waveform, not file-backed.
type Tone struct {
	Kind ToneKind
}

// Silence is an explicit gap; the plan encodes every gap, the assembler
// adds none of its own.
type Silence struct {
	Duration time.Duration
}

func (File) segment()    {}
func (Tone) segment()    {}
func (Silence) segment() {}

func (s File) String() string    { return string(s.Key) }
func (s Tone) String() string    { return s.Kind.String() }
func (s Silence) String() string { return fmt.Sprintf("silence(%s)", s.Duration) }

// Plan is the ordered list of segments to splice.
type Plan []Segment

// Options configures segment resolution.
type Options struct {
	UseAltMessage bool // force the alternate event phrasing
	IncludeTones  bool // frame the message with SAME bursts and attention tone
}

// altEvents lists event codes whose alternate phrasing is selected
// automatically, without the explicit flag.
var altEvents = map[string]bool{
	"ADR": true,
	"DMO": true,
}

// pauseDuration is the silence inserted around tone blocks.
const pauseDuration = time.Second

// sameRepeats is how many times the data bursts appear in the plan.
// SAME transmits the header three times so receivers can decode best
// two out of three.
const sameRepeats = 3

// MissingAssetsError reports every library clip a plan needs but the
// store lacks. Resolution is fail-fast: no assembly is attempted while
// any clip is missing.
type MissingAssetsError struct {
	Keys []assets.Key
}

func (e *MissingAssetsError) Error() string {
	names := slice.MapTo[string](e.Keys).To(func(k assets.Key) string {
		return string(k)
	})
	return "missing asset clips: " + strings.Join(names, ", ")
}

// Resolve maps a header to its ordered segment plan.
//
// With tones enabled the plan is framed per EAS convention: the SAME
// burst three times with one-second gaps, the attention signal, the
// voice message, then the EOM burst three times. The voice message is
// originator, event, each location in broadcast order ("and" before the
// last when there are several), "until", the spoken purge time in the
// resolved timezone, and the sender.
func Resolve(rec header.Record, rt alerttime.Resolved, store assets.Store, opts Options) (Plan, error) {
	voice := voiceKeys(rec, rt, opts)

	if missing := assets.Missing(store, voice); missing != nil {
		return nil, &MissingAssetsError{Keys: missing}
	}

	var plan Plan
	if opts.IncludeTones {
		plan = append(plan, Silence{pauseDuration})
		for i := 0; i < sameRepeats; i++ {
			if i > 0 {
				plan = append(plan, Silence{pauseDuration})
			}
			plan = append(plan, Tone{ToneSameBurst})
		}
		plan = append(plan, Silence{pauseDuration})
		plan = append(plan, Tone{ToneAttention})
		plan = append(plan, Silence{pauseDuration})
	}

	for _, key := range voice {
		plan = append(plan, File{Key: key})
	}

	if opts.IncludeTones {
		plan = append(plan, Silence{pauseDuration})
		for i := 0; i < sameRepeats; i++ {
			if i > 0 {
				plan = append(plan, Silence{pauseDuration})
			}
			plan = append(plan, Tone{ToneEOM})
		}
		plan = append(plan, Silence{pauseDuration})
	}

	return plan, nil
}

// voiceKeys derives the spoken-message clip keys in broadcast order.
func voiceKeys(rec header.Record, rt alerttime.Resolved, opts Options) []assets.Key {
	alt := opts.UseAltMessage || altEvents[rec.Event]

	keys := []assets.Key{
		assets.Originator(rec.Originator),
		assets.Event(rec.Event, alt),
	}

	for i, fips := range rec.FIPS {
		if i == len(rec.FIPS)-1 && i != 0 {
			keys = append(keys, assets.And)
		}
		keys = append(keys, assets.Location(fips))
	}

	keys = append(keys, assets.Until)
	keys = append(keys, spokenTime(rt.Purge)...)
	keys = append(keys, assets.Sender(rec.Sender))

	return keys
}

// spokenTime converts a purge instant to 12-hour clock clips.
// Midnight and noon both speak as twelve.
func spokenTime(t time.Time) []assets.Key {
	hour := t.Hour()
	pm := hour >= 12

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return []assets.Key{
		assets.Hour(hour12),
		assets.Minute(t.Minute()),
		assets.Meridiem(pm),
	}
}
