// Package assets is the content-addressed library of pre-recorded EMnet
// speech clips. Keys are relative WAV paths derived from header fields;
// the store resolves them against a library directory.
//
// Library layout:
//
//	ORIG/<code>.wav          originator announcements
//	EVENTS/<code>.wav        event announcements
//	EVENTS/<code>_alt.wav    alternate phrasing for select events
//	LOC/<fips>.wav           county/location names
//	TIMES/hour01..12.wav     spoken hours (12-hour clock)
//	TIMES/minute00..59.wav   spoken minutes
//	TIMES/am.wav, pm.wav     meridiem
//	OTHER/and.wav, until.wav connector words
//	SENDER/<id>.wav          station identifiers (sanitized)
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/easforge/emnet-splicer/internal/wave"
)

// Key identifies one clip in the library, as a relative WAV path.
type Key string

// Key constructors for each header-derived clip.

func Originator(code string) Key {
	return Key("ORIG/" + code + ".wav")
}

func Event(code string, alt bool) Key {
	if alt {
		return Key("EVENTS/" + code + "_alt.wav")
	}
	return Key("EVENTS/" + code + ".wav")
}

func Location(fips string) Key {
	return Key("LOC/" + fips + ".wav")
}

func Hour(h int) Key {
	return Key(fmt.Sprintf("TIMES/hour%02d.wav", h))
}

func Minute(m int) Key {
	return Key(fmt.Sprintf("TIMES/minute%02d.wav", m))
}

func Meridiem(pm bool) Key {
	if pm {
		return "TIMES/pm.wav"
	}
	return "TIMES/am.wav"
}

func Sender(id string) Key {
	return Key("SENDER/" + SanitizeID(id) + ".wav")
}

// Connector words used between spliced clips.
const (
	And   Key = "OTHER/and.wav"
	Until Key = "OTHER/until.wav"
)

// Store is a read-only lookup from clip key to decoded waveform.
type Store interface {
	Exists(key Key) bool
	Load(key Key) (wave.Waveform, error)
}

// DirStore serves clips from a directory tree on disk.
type DirStore struct {
	Root string
}

// NewDirStore opens a library directory.
func NewDirStore(root string) (*DirStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset library: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset library: %s is not a directory", root)
	}
	return &DirStore{Root: root}, nil
}

// Path returns the on-disk location of a clip.
func (s *DirStore) Path(key Key) string {
	return filepath.Join(s.Root, filepath.FromSlash(string(key)))
}

// Exists reports whether the clip is present in the library.
func (s *DirStore) Exists(key Key) bool {
	info, err := os.Stat(s.Path(key))
	return err == nil && !info.IsDir()
}

// Load reads and decodes a clip.
func (s *DirStore) Load(key Key) (wave.Waveform, error) {
	return wave.LoadFile(s.Path(key))
}

// Missing returns every key absent from the store, preserving order and
// dropping duplicates, so the caller can report all missing clips at once.
func Missing(s Store, keys []Key) []Key {
	var missing []Key
	seen := make(map[Key]bool)
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if !s.Exists(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
