// Package model defines core data structures for LogSift.
package model

// Occurrence represents a single log line that matched an error signature.
// It is created by the scanner and consumed exactly once by the aggregator;
// the reporter may persist it verbatim.
type Occurrence struct {
	// ErrorName is the name of the signature that owns this line.
	ErrorName string

	// File is the path of the log file the line came from.
	File string

	// Line is the 1-based line number within File.
	Line int

	// Message is the matched line with surrounding whitespace trimmed.
	Message string

	// Timestamp is the extracted ISO-8601 timestamp, or "" when the line
	// carried none. It is not guaranteed to parse: extraction succeeds at
	// the pattern level even when normalization fails.
	Timestamp string

	// CorrelationID is the extracted UUID-shaped token, or "".
	CorrelationID string

	// SessionID is the extracted numeric session identifier, or "".
	SessionID string
}

// SummaryEntry holds the aggregated statistics for one error category
// across all scanned files.
type SummaryEntry struct {
	// ErrorName is the signature name; stable join key for downstream tools.
	ErrorName string

	// Count is the number of occurrences aggregated for this category.
	Count int

	// FirstSeen and LastSeen are the chronological bounds among all parsed
	// occurrence timestamps, or "" when no occurrence carried one. Ordering
	// is best-effort: malformed timestamps never move the bounds.
	FirstSeen string
	LastSeen  string

	// Files is the sorted, deduplicated set of affected file paths.
	Files []string

	// SampleMessage is the message of the first occurrence seen.
	SampleMessage string
}
