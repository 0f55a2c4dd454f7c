package listen

import (
	"errors"
	"testing"
	"time"
)

func TestParseValidLine(t *testing.T) {
	ev, err := Parse("2026-08-23T14:05:00Z|u1|FR|song42")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ev.UserId != "u1" || ev.Country != "FR" || ev.SongId != "song42" {
		t.Errorf("Expected u1/FR/song42, got %s/%s/%s", ev.UserId, ev.Country, ev.SongId)
	}
	want := time.Date(2026, 8, 23, 14, 5, 0, 0, time.UTC)
	if !ev.Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, ev.Timestamp)
	}
}

func TestParseWrongFieldCount(t *testing.T) {
	_, err := Parse("2026-08-23T14:05:00Z|u1|FR")
	assertParseError(t, err)
}

func TestParseEmptyField(t *testing.T) {
	_, err := Parse("2026-08-23T14:05:00Z||FR|song42")
	assertParseError(t, err)

	_, err = Parse("2026-08-23T14:05:00Z|u1|FR| ")
	assertParseError(t, err)
}

func TestParseBadTimestamp(t *testing.T) {
	_, err := Parse("yesterday|u1|FR|song42")
	assertParseError(t, err)
}

func TestParseErrorCarriesLine(t *testing.T) {
	line := "not a log line"
	_, err := Parse(line)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected a *ParseError, got %T", err)
	}
	if pe.Line != line {
		t.Errorf("Expected offending line %q, got %q", line, pe.Line)
	}
}

func assertParseError(t *testing.T, err error) {
	t.Helper()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Expected a *ParseError, got %v", err)
	}
}
