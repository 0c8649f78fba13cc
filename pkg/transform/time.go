package transform

import (
	"time"
)

const (
	shortTimeFormat    = "15:04"
	fullDateTimeFormat = "02.01.2006, 15:04"
)

// Layouts the upstream has been seen using for timestamps. Zone-less
// layouts are interpreted in the formatter's location.
var upstreamTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Formatter renders upstream timestamps in a single fixed time zone,
// regardless of server locale.
type Formatter struct {
	location *time.Location
}

func NewFormatter(location *time.Location) *Formatter {
	return &Formatter{location: location}
}

// ShortTime renders a raw upstream timestamp as zero-padded 24h HH:MM.
// Empty input stays nil; a timestamp we cannot parse is passed through
// verbatim so malformed upstream data stays visible to the caller.
func (f *Formatter) ShortTime(raw string) *string {
	return f.format(raw, shortTimeFormat)
}

// FullDateTime renders a raw upstream timestamp as DD.MM.YYYY, HH:MM
// with the same null & passthrough rules as ShortTime.
func (f *Formatter) FullDateTime(raw string) *string {
	return f.format(raw, fullDateTimeFormat)
}

// FullNow renders the current moment in the full date-time form.
func (f *Formatter) FullNow() string {
	return time.Now().In(f.location).Format(fullDateTimeFormat)
}

func (f *Formatter) format(raw string, layout string) *string {
	if raw == "" {
		return nil
	}

	parsed, err := f.Parse(raw)
	if err != nil {
		return &raw
	}

	formatted := parsed.In(f.location).Format(layout)
	return &formatted
}

// Parse interprets a timestamp using the known layouts, reading
// zone-less values in the formatter's location.
func (f *Formatter) Parse(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range upstreamTimeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, f.location)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
