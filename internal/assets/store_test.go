package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/easforge/emnet-splicer/internal/wave"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		got  Key
		want Key
	}{
		{Originator("WXR"), "ORIG/WXR.wav"},
		{Event("RWT", false), "EVENTS/RWT.wav"},
		{Event("ADR", true), "EVENTS/ADR_alt.wav"},
		{Location("031025"), "LOC/031025.wav"},
		{Hour(1), "TIMES/hour01.wav"},
		{Hour(12), "TIMES/hour12.wav"},
		{Minute(0), "TIMES/minute00.wav"},
		{Minute(59), "TIMES/minute59.wav"},
		{Meridiem(false), "TIMES/am.wav"},
		{Meridiem(true), "TIMES/pm.wav"},
		{Sender("KOAX/NWS"), "SENDER/KOAX_NWS.wav"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("key = %q, want %q", tt.got, tt.want)
		}
	}
}

// writeClip drops a small valid WAV into the library tree.
func writeClip(t *testing.T, root string, key Key) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(string(key)))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	clip := wave.Waveform{SampleRate: 44100, Channels: 1, Samples: []int16{0, 1000, -1000, 0}}
	if err := os.WriteFile(path, wave.Encode(clip), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirStore(t *testing.T) {
	root := t.TempDir()
	writeClip(t, root, Location("031025"))

	store, err := NewDirStore(root)
	if err != nil {
		t.Fatalf("NewDirStore error: %v", err)
	}

	if !store.Exists(Location("031025")) {
		t.Error("Exists(LOC/031025.wav) = false, want true")
	}
	if store.Exists(Location("999999")) {
		t.Error("Exists(LOC/999999.wav) = true, want false")
	}

	w, err := store.Load(Location("031025"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if w.SampleRate != 44100 || len(w.Samples) != 4 {
		t.Errorf("loaded %dHz %d samples, want 44100Hz 4 samples", w.SampleRate, len(w.Samples))
	}
}

func TestNewDirStore_MissingRoot(t *testing.T) {
	if _, err := NewDirStore("/nonexistent/asset/library"); err == nil {
		t.Error("NewDirStore should fail for a missing directory")
	}
}

func TestMissing(t *testing.T) {
	root := t.TempDir()
	writeClip(t, root, Originator("WXR"))
	writeClip(t, root, Until)

	store, err := NewDirStore(root)
	if err != nil {
		t.Fatal(err)
	}

	keys := []Key{
		Originator("WXR"),
		Location("048113"),
		Until,
		Location("048113"), // duplicate reported once
		Hour(3),
	}

	got := Missing(store, keys)
	want := []Key{Location("048113"), Hour(3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
}

func TestMissing_NoneMissing(t *testing.T) {
	root := t.TempDir()
	writeClip(t, root, Originator("WXR"))

	store, err := NewDirStore(root)
	if err != nil {
		t.Fatal(err)
	}

	if got := Missing(store, []Key{Originator("WXR")}); got != nil {
		t.Errorf("Missing = %v, want nil", got)
	}
}
