package header

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	rec, err := Parse("ZCZC-WXR-RWT-031025+0100-0010000-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if rec.Originator != "WXR" {
		t.Errorf("Originator = %q, want %q", rec.Originator, "WXR")
	}
	if rec.Event != "RWT" {
		t.Errorf("Event = %q, want %q", rec.Event, "RWT")
	}
	if !reflect.DeepEqual(rec.FIPS, []string{"031025"}) {
		t.Errorf("FIPS = %v, want [031025]", rec.FIPS)
	}
	if rec.PurgeMinutes != 60 {
		t.Errorf("PurgeMinutes = %d, want 60", rec.PurgeMinutes)
	}
	if rec.IssueDay != 1 || rec.IssueHour != 0 || rec.IssueMinute != 0 {
		t.Errorf("Issue = day %d %02d:%02d, want day 1 00:00", rec.IssueDay, rec.IssueHour, rec.IssueMinute)
	}
	if rec.Sender != "KOAX/NWS" {
		t.Errorf("Sender = %q, want %q", rec.Sender, "KOAX/NWS")
	}
	if rec.Repeats != 1 {
		t.Errorf("Repeats = %d, want 1", rec.Repeats)
	}
}

func TestParse_PurgeMinutesHHMM(t *testing.T) {
	// +0130 is one hour and thirty minutes, not 130 minutes
	rec, err := Parse("ZCZC-CIV-CEM-048113+0130-1231200-KXYZ/CIV-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if rec.PurgeMinutes != 90 {
		t.Errorf("PurgeMinutes = %d, want 90", rec.PurgeMinutes)
	}
	if rec.IssueDay != 123 || rec.IssueHour != 12 || rec.IssueMinute != 0 {
		t.Errorf("Issue = day %d %02d:%02d, want day 123 12:00", rec.IssueDay, rec.IssueHour, rec.IssueMinute)
	}
}

func TestParse_DashSeparatedFIPS(t *testing.T) {
	rec, err := Parse("ZCZC-WXR-TOR-031025-048113-031055+0030-2101530-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := []string{"031025", "048113", "031055"}
	if !reflect.DeepEqual(rec.FIPS, want) {
		t.Errorf("FIPS = %v, want %v", rec.FIPS, want)
	}
}

func TestParse_ConcatenatedFIPS(t *testing.T) {
	// Codes may share one dash-delimited token with no separators
	rec, err := Parse("ZCZC-WXR-TOR-031025048113+0030-2101530-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := []string{"031025", "048113"}
	if !reflect.DeepEqual(rec.FIPS, want) {
		t.Errorf("FIPS = %v, want %v", rec.FIPS, want)
	}
}

func TestParse_DuplicateFIPSPreserved(t *testing.T) {
	rec, err := Parse("ZCZC-WXR-TOR-031025-031025+0030-2101530-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(rec.FIPS) != 2 {
		t.Errorf("len(FIPS) = %d, want 2 (duplicates allowed)", len(rec.FIPS))
	}
}

func TestParse_SenderSlashNotARepeat(t *testing.T) {
	// The "/" in KOAX/NWS belongs to the sender field, not repeat framing
	rec, err := Parse("ZCZC-WXR-RWT-031025+0100-0010000-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if rec.Sender != "KOAX/NWS" || rec.Repeats != 1 {
		t.Errorf("Sender = %q Repeats = %d, want KOAX/NWS and 1", rec.Sender, rec.Repeats)
	}
}

func TestParse_Repeats(t *testing.T) {
	one := "ZCZC-WXR-RWT-031025+0100-0010000-KOAX/NWS-"
	rec, err := Parse(one + "/" + one + "/" + one)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if rec.Repeats != 3 {
		t.Errorf("Repeats = %d, want 3", rec.Repeats)
	}
	if rec.Sender != "KOAX/NWS" {
		t.Errorf("Sender = %q, want %q", rec.Sender, "KOAX/NWS")
	}
}

func TestParse_RepeatMismatch(t *testing.T) {
	raw := "ZCZC-WXR-RWT-031025+0100-0010000-KOAX/NWS-" +
		"/ZCZC-WXR-RWT-031025+0200-0010000-KOAX/NWS-"

	_, err := Parse(raw)

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("Parse error = %v, want *MalformedError", err)
	}
	if malformed.Field != "repeat" {
		t.Errorf("Field = %q, want %q", malformed.Field, "repeat")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing prefix", "WXR-RWT-031025+0100-0010000-KOAX/NWS-", "prefix"},
		{"short originator", "ZCZC-WX-RWT-031025+0100-0010000-KOAX/NWS-", "originator"},
		{"lowercase event", "ZCZC-WXR-rwt-031025+0100-0010000-KOAX/NWS-", "event"},
		{"five digit location", "ZCZC-WXR-RWT-31025+0100-0010000-KOAX/NWS-", "location"},
		{"ragged location block", "ZCZC-WXR-RWT-031025048+0100-0010000-KOAX/NWS-", "location"},
		{"missing purge", "ZCZC-WXR-RWT-031025-0010000-KOAX/NWS-", "purge"},
		{"purge minutes out of range", "ZCZC-WXR-RWT-031025+0175-0010000-KOAX/NWS-", "purge"},
		{"day zero", "ZCZC-WXR-RWT-031025+0100-0000000-KOAX/NWS-", "timestamp"},
		{"day 367", "ZCZC-WXR-RWT-031025+0100-3670000-KOAX/NWS-", "timestamp"},
		{"hour 24", "ZCZC-WXR-RWT-031025+0100-0012400-KOAX/NWS-", "timestamp"},
		{"minute 60", "ZCZC-WXR-RWT-031025+0100-0010060-KOAX/NWS-", "timestamp"},
		{"sender too long", "ZCZC-WXR-RWT-031025+0100-0010000-KOAXKOAX/NWS-", "sender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)

			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse(%q) error = %v, want *MalformedError", tt.raw, err)
			}
			if malformed.Field != tt.field {
				t.Errorf("Field = %q, want %q", malformed.Field, tt.field)
			}
		})
	}
}

func TestCanonical_RoundTrip(t *testing.T) {
	headers := []string{
		"ZCZC-WXR-RWT-031025+0100-0010000-KOAX/NWS-",
		"ZCZC-CIV-ADR-048113+0030-0010000-KXYZ/CIV-",
		"ZCZC-PEP-EAN-000000+0400-3662359-WHITEHSE-",
		"ZCZC-WXR-TOR-031025-048113-031055+0015-2101530-KOAX/NWS-",
	}

	for _, raw := range headers {
		rec, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", raw, err)
		}

		canonical := rec.Canonical()
		again, err := Parse(canonical)
		if err != nil {
			t.Fatalf("Parse(Canonical(%q)) error: %v", raw, err)
		}

		if !reflect.DeepEqual(rec, again) {
			t.Errorf("round trip of %q: got %+v, want %+v", raw, again, rec)
		}
	}
}

func TestCanonical_NormalizesConcatenatedFIPS(t *testing.T) {
	rec, err := Parse("ZCZC-WXR-TOR-031025048113+0030-2101530-KOAX/NWS-")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := "ZCZC-WXR-TOR-031025-048113+0030-2101530-KOAX/NWS-"
	if got := rec.Canonical(); got != want {
		t.Errorf("Canonical() = %q, want %q", got, want)
	}
}

func TestEventName(t *testing.T) {
	if name, ok := EventName("RWT"); !ok || name != "Required Weekly Test" {
		t.Errorf("EventName(RWT) = %q, %v", name, ok)
	}
	if _, ok := EventName("XXX"); ok {
		t.Error("EventName(XXX) should not be known")
	}
}
