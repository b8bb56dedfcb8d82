package splice

import (
	"fmt"

	"github.com/easforge/emnet-splicer/internal/assets"
	"github.com/easforge/emnet-splicer/internal/wave"
)

// Tones supplies the synthesized waveform for each tone kind in a plan.
// Synthesis is pure, so the caller builds this map once per invocation.
type Tones map[ToneKind]wave.Waveform

// Assemble loads or materializes every segment of a plan in order,
// normalizes all of them to the target format, and concatenates them
// into one waveform. It never writes to storage.
func Assemble(plan Plan, store assets.Store, tones Tones, target wave.Format) (wave.Waveform, error) {
	waves := make([]wave.Waveform, 0, len(plan))

	for _, seg := range plan {
		switch s := seg.(type) {
		case File:
			w, err := store.Load(s.Key)
			if err != nil {
				return wave.Waveform{}, fmt.Errorf("load %s: %w", s.Key, err)
			}
			waves = append(waves, w)
		case Tone:
			w, ok := tones[s.Kind]
			if !ok {
				return wave.Waveform{}, fmt.Errorf("no synthesized waveform for %s", s.Kind)
			}
			waves = append(waves, w)
		case Silence:
			waves = append(waves, wave.Silence(s.Duration, target))
		default:
			return wave.Waveform{}, fmt.Errorf("unknown segment type %T", seg)
		}
	}

	out, err := wave.Concat(target, waves...)
	if err != nil {
		return wave.Waveform{}, fmt.Errorf("splice: %w", err)
	}
	return out, nil
}
