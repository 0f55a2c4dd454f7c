package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ElmaazouziSara/song-stream-daily/internal/listen"
	"github.com/ElmaazouziSara/song-stream-daily/pkg/logs"
)

// DateLayout is the YYYYMMDD form used in log and artifact file names.
const DateLayout = "20060102"

var (
	// ErrDateNotFound means no log file exists for the requested date.
	ErrDateNotFound = errors.New("no log file for date")
	// ErrEmptyBatch means the log file exists but yielded zero valid events.
	ErrEmptyBatch = errors.New("log file has no valid events")
)

// Batch holds one nominal day's events plus the report of rejected lines.
type Batch struct {
	Date     time.Time
	Events   []listen.Event
	Failures []*listen.ParseError
}

// FileName maps a date to its log file name, e.g. listen-20260823.log.
func FileName(date time.Time) string {
	return fmt.Sprintf("listen-%s.log", date.Format(DateLayout))
}

// Load reads the log file for the given date and parses it line by line.
// Malformed lines are recorded in the batch's failure report, never aborting
// the load. Events stamped outside the file's nominal day are rejected too.
//
// Load returns ErrDateNotFound when the file is missing, and ErrEmptyBatch
// (alongside the batch, so the failure report stays available) when the file
// produced no valid event.
func Load(date time.Time, logDir string) (*Batch, error) {
	path := filepath.Join(logDir, FileName(date))

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDateNotFound, path)
		}
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logs.Logger.Errorf("error closing %s: %v", path, err)
		}
	}()

	batch := &Batch{Date: date}
	reader := bufio.NewReader(file)
	for {
		// ReadString instead of a Scanner: a line longer than the Scanner's
		// token limit must become one failure-report entry, not a dead day.
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			batch.add(line, date)
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(batch.Events) == 0 {
		return batch, fmt.Errorf("%w: %s", ErrEmptyBatch, path)
	}
	return batch, nil
}

// LoadRange loads every date from `from` to `to` inclusive. Dates without a
// log file are skipped; any other failure stops the range load.
func LoadRange(from, to time.Time, logDir string) ([]*Batch, error) {
	var batches []*Batch
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		batch, err := Load(d, logDir)
		if errors.Is(err, ErrDateNotFound) {
			logs.Logger.Warningf("skipping %s: %v", d.Format(DateLayout), err)
			continue
		}
		if err != nil && !errors.Is(err, ErrEmptyBatch) {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

func (b *Batch) add(line string, date time.Time) {
	ev, err := listen.Parse(line)
	if err != nil {
		var pe *listen.ParseError
		if errors.As(err, &pe) {
			b.Failures = append(b.Failures, pe)
			return
		}
		// listen.Parse only returns *ParseError; treat anything else the same.
		b.Failures = append(b.Failures, &listen.ParseError{Line: line, Reason: err.Error()})
		return
	}

	if !sameDay(ev.Timestamp, date) {
		b.Failures = append(b.Failures, &listen.ParseError{
			Line:   line,
			Reason: fmt.Sprintf("timestamp outside nominal day %s", date.Format(DateLayout)),
		})
		return
	}

	b.Events = append(b.Events, ev)
}

// sameDay reports whether the event timestamp falls on the nominal calendar
// day. The nominal day is read in the date's own location, the same frame
// FileName formats it in, so a local-time date names and checks the same
// day; events are judged in UTC.
func sameDay(ts, nominal time.Time) bool {
	y1, m1, d1 := ts.UTC().Date()
	y2, m2, d2 := nominal.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
