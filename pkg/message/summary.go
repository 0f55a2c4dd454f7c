package message

import (
	"bytes"

	"github.com/ElmaazouziSara/song-stream-daily/pkg/utils/encoding"
)

// ChartSummary announces that one day's chart artifacts are on disk. It is
// the only message this binary ever publishes; downstream consumers read the
// artifacts themselves.
type ChartSummary struct {
	Date            string // YYYYMMDD of the processed day
	RunId           string
	Events          uint64 // valid listen events aggregated
	ParseFailures   uint64
	Countries       uint64 // countries with at least one ranked song
	Users           uint64 // users with at least one ranked song
	CountryChecksum uint32 // xxHash32 of the country artifact
	UserChecksum    uint32 // xxHash32 of the user artifact
}

func ChartSummaryFromBytes(b []byte) (ChartSummary, error) {
	buf := bytes.NewBuffer(b)

	date, err := encoding.DecodeString(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	runId, err := encoding.DecodeString(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	events, err := encoding.DecodeUint64(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	failures, err := encoding.DecodeUint64(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	countries, err := encoding.DecodeUint64(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	users, err := encoding.DecodeUint64(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	countrySum, err := encoding.DecodeUint32(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	userSum, err := encoding.DecodeUint32(buf)
	if err != nil {
		return ChartSummary{}, err
	}

	return ChartSummary{
		Date:            date,
		RunId:           runId,
		Events:          events,
		ParseFailures:   failures,
		Countries:       countries,
		Users:           users,
		CountryChecksum: countrySum,
		UserChecksum:    userSum,
	}, nil
}

func (m ChartSummary) ToBytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	if err := encoding.EncodeString(buf, m.Date); err != nil {
		return nil, err
	}

	if err := encoding.EncodeString(buf, m.RunId); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.Events); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.ParseFailures); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.Countries); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.Users); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.CountryChecksum); err != nil {
		return nil, err
	}

	if err := encoding.EncodeNumber(buf, m.UserChecksum); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
