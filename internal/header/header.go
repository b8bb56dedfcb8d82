// Package header parses EAS "ZCZC" header codes into structured records.
//
// Grammar: ZCZC-ORG-EEE-PSSCCC[-PSSCCC...]+TTTT-JJJHHMM-LLLLLLLL-
// where ORG is the originator, EEE the event code, PSSCCC one or more
// 6-digit FIPS location codes (dash-separated or concatenated), TTTT the
// purge duration as HHMM, JJJHHMM the issue day-of-year and time, and
// LLLLLLLL the sender/station identifier (up to 8 characters, which may
// themselves contain "/", e.g. "KOAX/NWS").
//
// A header may be repeated, separated by "/" as in real EAS framing.
// All repeats must agree field-for-field or the input is rejected.
package header

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxLocations is the SAME limit on FIPS codes per header.
const MaxLocations = 31

// Record is a parsed ZCZC header. Immutable once created.
type Record struct {
	Originator   string   // 3 uppercase letters, e.g. "WXR"
	Event        string   // 3 uppercase letters, e.g. "RWT"
	FIPS         []string // 6-digit location codes, broadcast order
	PurgeMinutes int      // decoded from +HHMM
	IssueDay     int      // Julian day of year, 1-366
	IssueHour    int      // 0-23
	IssueMinute  int      // 0-59
	Sender       string   // up to 8 characters, e.g. "KOAX/NWS"
	Repeats      int      // how many times the header appeared in the input
}

// MalformedError reports a structurally invalid header, naming the
// offending field.
type MalformedError struct {
	Field string
	Value string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed header: bad %s field %q", e.Field, e.Value)
}

// headerPattern captures one header occurrence. The FIPS group accepts
// both dash-separated 6-digit tokens and a single concatenated block;
// the sender group is anchored as the last dash field so a "/" inside it
// is never mistaken for a repeat boundary.
var headerPattern = regexp.MustCompile(
	`^ZCZC-([A-Z]{3})-([A-Z]{3})-((?:\d{6}-?){1,31})\+(\d{4})-(\d{7})-([A-Za-z0-9/ ]{1,8})-?$`)

// Parse parses a raw ZCZC header string, including "/"-separated repeats.
func Parse(raw string) (Record, error) {
	raw = strings.TrimSpace(raw)

	copies, err := splitRepeats(raw)
	if err != nil {
		return Record{}, err
	}

	first, err := parseOne(copies[0])
	if err != nil {
		return Record{}, err
	}
	for _, c := range copies[1:] {
		rec, err := parseOne(c)
		if err != nil {
			return Record{}, err
		}
		if !first.sameFields(rec) {
			return Record{}, &MalformedError{Field: "repeat", Value: c}
		}
	}

	first.Repeats = len(copies)
	return first, nil
}

// splitRepeats splits the input into individual header occurrences.
// A repeat boundary is a "/" immediately before a "ZCZC-" prefix, which
// keeps "/" inside the sender field intact.
func splitRepeats(raw string) ([]string, error) {
	if !strings.HasPrefix(raw, "ZCZC-") {
		return nil, &MalformedError{Field: "prefix", Value: raw}
	}

	var copies []string
	rest := raw
	for {
		// Look for the start of the next occurrence.
		next := strings.Index(rest[1:], "ZCZC-")
		if next < 0 {
			copies = append(copies, rest)
			return copies, nil
		}
		next++ // offset into rest

		head := rest[:next]
		if !strings.HasSuffix(head, "/") {
			// "ZCZC-" without a "/" boundary cannot appear inside a
			// well-formed header; reject rather than guess.
			return nil, &MalformedError{Field: "repeat", Value: raw}
		}
		copies = append(copies, strings.TrimSuffix(head, "/"))
		rest = rest[next:]
	}
}

// parseOne parses a single header occurrence (no repeats).
func parseOne(raw string) (Record, error) {
	m := headerPattern.FindStringSubmatch(raw)
	if m == nil {
		return Record{}, classifyFailure(raw)
	}

	originator, event, fipsBlock, purge, timestamp, sender := m[1], m[2], m[3], m[4], m[5], m[6]

	fips, err := splitFIPS(fipsBlock)
	if err != nil {
		return Record{}, err
	}

	purgeHours, _ := strconv.Atoi(purge[0:2])
	purgeMins, _ := strconv.Atoi(purge[2:4])
	if purgeMins > 59 {
		return Record{}, &MalformedError{Field: "purge", Value: "+" + purge}
	}

	day, _ := strconv.Atoi(timestamp[0:3])
	hour, _ := strconv.Atoi(timestamp[3:5])
	minute, _ := strconv.Atoi(timestamp[5:7])
	if day < 1 || day > 366 || hour > 23 || minute > 59 {
		return Record{}, &MalformedError{Field: "timestamp", Value: timestamp}
	}

	return Record{
		Originator:   originator,
		Event:        event,
		FIPS:         fips,
		PurgeMinutes: purgeHours*60 + purgeMins,
		IssueDay:     day,
		IssueHour:    hour,
		IssueMinute:  minute,
		Sender:       strings.TrimSpace(sender),
		Repeats:      1,
	}, nil
}

// splitFIPS breaks the location block into individual 6-digit codes.
// Accepts both "031025-048113" and "031025048113".
func splitFIPS(block string) ([]string, error) {
	digits := strings.ReplaceAll(block, "-", "")
	if len(digits)%6 != 0 {
		return nil, &MalformedError{Field: "location", Value: block}
	}

	n := len(digits) / 6
	if n > MaxLocations {
		return nil, &MalformedError{Field: "location", Value: block}
	}

	fips := make([]string, n)
	for i := range fips {
		fips[i] = digits[i*6 : i*6+6]
	}
	return fips, nil
}

// Per-field shapes, used to name the broken field when the full
// pattern does not match.
var (
	codePattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	fipsBlockPattern = regexp.MustCompile(`^(?:\d{6}-?)+$`)
	purgePattern     = regexp.MustCompile(`^\d{4}`)
	timestampPattern = regexp.MustCompile(`^\d{7}`)
)

// classifyFailure names the first field that breaks the grammar, for a
// useful error message when the full pattern does not match.
func classifyFailure(raw string) error {
	body := strings.TrimPrefix(raw, "ZCZC-")
	fields := strings.SplitN(body, "-", 3)

	if len(fields) < 1 || !codePattern.MatchString(fields[0]) {
		return &MalformedError{Field: "originator", Value: firstOr(fields, 0)}
	}
	if len(fields) < 2 || !codePattern.MatchString(fields[1]) {
		return &MalformedError{Field: "event", Value: firstOr(fields, 1)}
	}

	rest := firstOr(fields, 2)
	plus := strings.Index(rest, "+")
	if plus < 0 {
		return &MalformedError{Field: "purge", Value: rest}
	}
	if !fipsBlockPattern.MatchString(rest[:plus]) {
		return &MalformedError{Field: "location", Value: rest[:plus]}
	}

	after := rest[plus+1:]
	if len(after) < 4 || !purgePattern.MatchString(after) {
		return &MalformedError{Field: "purge", Value: "+" + after}
	}

	after = strings.TrimPrefix(after[4:], "-")
	if len(after) < 7 || !timestampPattern.MatchString(after) {
		return &MalformedError{Field: "timestamp", Value: after}
	}

	return &MalformedError{Field: "sender", Value: strings.TrimPrefix(after[7:], "-")}
}

func firstOr(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// sameFields reports whether two records agree on every header field.
// Repeat count is excluded.
func (r Record) sameFields(o Record) bool {
	if r.Originator != o.Originator || r.Event != o.Event ||
		r.PurgeMinutes != o.PurgeMinutes || r.Sender != o.Sender ||
		r.IssueDay != o.IssueDay || r.IssueHour != o.IssueHour || r.IssueMinute != o.IssueMinute {
		return false
	}
	if len(r.FIPS) != len(o.FIPS) {
		return false
	}
	for i := range r.FIPS {
		if r.FIPS[i] != o.FIPS[i] {
			return false
		}
	}
	return true
}

// Canonical re-serializes the record to the ZCZC grammar with
// dash-separated FIPS codes and a trailing dash, as transmitted.
// Parse(r.Canonical()) yields a record equal to r (single repeat).
func (r Record) Canonical() string {
	var sb strings.Builder
	sb.WriteString("ZCZC-")
	sb.WriteString(r.Originator)
	sb.WriteByte('-')
	sb.WriteString(r.Event)
	sb.WriteByte('-')
	sb.WriteString(strings.Join(r.FIPS, "-"))
	fmt.Fprintf(&sb, "+%02d%02d", r.PurgeMinutes/60, r.PurgeMinutes%60)
	fmt.Fprintf(&sb, "-%03d%02d%02d", r.IssueDay, r.IssueHour, r.IssueMinute)
	sb.WriteByte('-')
	sb.WriteString(r.Sender)
	sb.WriteByte('-')
	return sb.String()
}
