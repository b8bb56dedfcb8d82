package assets

import "testing"

func TestSanitizeID_SenderSlash(t *testing.T) {
	got := SanitizeID("KOAX/NWS")
	want := "KOAX_NWS"

	if got != want {
		t.Errorf("SanitizeID() = %q, want %q", got, want)
	}
}

func TestSanitizeID_Spaces(t *testing.T) {
	got := SanitizeID("KLOX NWS LOX")
	want := "KLOX_NWS_LOX"

	if got != want {
		t.Errorf("SanitizeID() = %q, want %q", got, want)
	}
}

func TestSanitizeID_CollapsesUnderscores(t *testing.T) {
	got := SanitizeID("K / X")
	want := "K_X"

	if got != want {
		t.Errorf("SanitizeID() = %q, want %q", got, want)
	}
}

func TestSanitizeID_NonASCII(t *testing.T) {
	got := SanitizeID("KÔAX/NWS")
	want := "KOAX_NWS"

	if got != want {
		t.Errorf("SanitizeID() = %q, want %q", got, want)
	}
}

func TestSanitizeID_TrimsEdges(t *testing.T) {
	got := SanitizeID("/KOAX/")
	want := "KOAX"

	if got != want {
		t.Errorf("SanitizeID() = %q, want %q", got, want)
	}
}
