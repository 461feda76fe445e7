package buildlog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogAppendOrder(t *testing.T) {
	log := New(Options{})
	log.Append("clone", "first")
	log.Append("", "second")
	log.Appendf("deploy", "copied %d files", 4)

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Stage != "clone" || entries[0].Message != "first" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Stage != "" {
		t.Fatalf("expected untagged entry, got %+v", entries[1])
	}
	if entries[2].Message != "copied 4 files" {
		t.Fatalf("unexpected formatted entry: %+v", entries[2])
	}
}

func TestLogTimestampsMonotonic(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	log := New(Options{Now: clock})
	for i := 0; i < 5; i++ {
		log.Append("test", "entry")
	}

	entries := log.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].Time.Before(entries[i-1].Time) {
			t.Fatalf("timestamps regressed at index %d: %v before %v", i, entries[i].Time, entries[i-1].Time)
		}
	}
}

func TestLogMirrorsToWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	log := New(Options{Out: buf, Now: func() time.Time { return base }})

	log.Append("deploy", "Deployment manifest created")

	out := buf.String()
	if !strings.Contains(out, "Deployment manifest created") {
		t.Fatalf("expected message in console output, got %q", out)
	}
	if !strings.Contains(out, "stage=deploy") {
		t.Fatalf("expected stage tag in console output, got %q", out)
	}
	if !strings.Contains(out, "2024-03-01 12:00:00") {
		t.Fatalf("expected formatted timestamp, got %q", out)
	}
}

func TestLogEntriesSnapshot(t *testing.T) {
	log := New(Options{})
	log.Append("clone", "original")

	snapshot := log.Entries()
	snapshot[0].Message = "mutated"

	if got := log.Entries()[0].Message; got != "original" {
		t.Fatalf("snapshot mutation leaked into log: %q", got)
	}
}
