package listen

import (
	"fmt"
	"strings"
	"time"
)

// Log line contract: four pipe-delimited fields, in this order:
//
//	timestamp|user_id|country|song_id
//
// The timestamp is RFC3339. Every field must be non-empty; ids are opaque
// strings and the country is an ISO-style code or name.
const (
	FieldSep        = "|"
	fieldCount      = 4
	TimestampLayout = time.RFC3339
)

// Event is one observed play.
type Event struct {
	Timestamp time.Time
	UserId    string
	Country   string
	SongId    string
}

// ParseError records one rejected log line. It is never fatal: the loader
// accumulates these and keeps going.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable listen event %q: %s", e.Line, e.Reason)
}

// Parse decodes one raw log line into an Event. It is a pure function: on a
// malformed line it returns a *ParseError carrying the line and the reason.
func Parse(line string) (Event, error) {
	fields := strings.Split(line, FieldSep)
	if len(fields) != fieldCount {
		return Event{}, &ParseError{Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields))}
	}

	for i, f := range fields {
		if strings.TrimSpace(f) == "" {
			return Event{}, &ParseError{Line: line, Reason: fmt.Sprintf("empty field at position %d", i)}
		}
	}

	ts, err := time.Parse(TimestampLayout, fields[0])
	if err != nil {
		return Event{}, &ParseError{Line: line, Reason: fmt.Sprintf("bad timestamp: %s", err)}
	}

	return Event{
		Timestamp: ts,
		UserId:    fields[1],
		Country:   fields[2],
		SongId:    fields[3],
	}, nil
}
