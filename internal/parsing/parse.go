// Package parsing turns loosely structured delimited text into student profile records.
package parsing

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/student-portfolio/internal/types"
)

// timestampLayout matches the ISO-8601 form browsers produce for Date.toISOString
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Normalizer parses CSV uploads into ProfileRecords.
// It is safe for concurrent use; each Parse call works on local state only.
type Normalizer struct {
	stamps *stampSource
	logger *zap.Logger
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithClock sets the clock used for profile ids and lastUpdated
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.stamps = newStampSource(now)
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *zap.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNormalizer creates a Normalizer using the wall clock and a no-op logger by default
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		stamps: newStampSource(time.Now),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Parse parses text with the package default Normalizer
func Parse(text string) []types.ProfileRecord {
	return defaultNormalizer.Parse(text)
}

// Parse converts CSV text into one record per data row.
//
// Blank lines are ignored wherever they appear. The first remaining line is the header.
// With fewer than two remaining lines the result is empty. Parse never fails: short or
// malformed rows produce records with empty fields.
func (n *Normalizer) Parse(text string) []types.ProfileRecord {
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		n.logger.Debug("no data rows to parse", zap.Int("lines", len(lines)))
		return []types.ProfileRecord{}
	}

	headers := TokenizeRow(lines[0])
	for i, h := range headers {
		headers[i] = strings.TrimSpace(stripQuotes(h))
	}

	for _, h := range headers {
		if h != "" && !IsKnownColumn(h) && types.IsRecordKey(h) {
			n.logger.Debug("column shadowed by typed record field; value kept in Extra only",
				zap.String("header", h))
		}
	}

	stamp, now := n.stamps.next()
	lastUpdated := now.UTC().Format(timestampLayout)

	records := make([]types.ProfileRecord, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		values := TokenizeRow(lines[i])
		if len(values) != len(headers) {
			n.logger.Debug("row width differs from header",
				zap.Int("row", i),
				zap.Int("fields", len(values)),
				zap.Int("headers", len(headers)))
		}

		b := newRecordBuilder()
		for col, header := range headers {
			if header == "" {
				continue
			}
			b.set(header, stripQuotes(fieldAt(values, col)))
		}

		records = append(records, b.build(fmt.Sprintf("profile-%d-%d", stamp, i), lastUpdated))
	}

	n.logger.Debug("parsed profile records",
		zap.Int("headers", len(headers)),
		zap.Int("records", len(records)))

	return records
}

// nonBlankLines splits text on newlines and drops whitespace-only lines
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
