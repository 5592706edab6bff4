package extract

import (
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		found    bool
	}{
		{
			name:     "datetime with space separator",
			line:     "2025-04-10 12:00:00 nsUtils failed err: 5",
			expected: "2025-04-10T12:00:00",
			found:    true,
		},
		{
			name:     "datetime with T separator",
			line:     "at 2025-04-10T08:30:15 the tunnel dropped",
			expected: "2025-04-10T08:30:15",
			found:    true,
		},
		{
			name:     "bracketed day-first date",
			line:     "[10/04/2025 | PSMApp] session terminated",
			expected: "2025-04-10T00:00:00",
			found:    true,
		},
		{
			name:     "bracketed date that is not a real day",
			line:     "[31/02/2025 | PSMApp] session terminated",
			expected: "31/02/2025",
			found:    true,
		},
		{
			name:     "datetime that is not a real instant",
			line:     "2025-99-10 12:00:00 malformed clock",
			expected: "2025-99-10T12:00:00",
			found:    true,
		},
		{
			name:  "no timestamp",
			line:  "plain message without any date",
			found: false,
		},
		{
			name:  "bracketed date without pipe is not a prefix",
			line:  "[10/04/2025] session terminated",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Timestamp(tt.line)
			if found != tt.found || got != tt.expected {
				t.Errorf("Timestamp(%q) = (%q, %v), want (%q, %v)",
					tt.line, got, found, tt.expected, tt.found)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		found    bool
	}{
		{"Session UUID 123e4567-e89b-12d3-a456-426614174000 was unregistered", "123e4567-e89b-12d3-a456-426614174000", true},
		{"uppercase ABCDEF12-1234-5678-9ABC-DEF012345678 token", "ABCDEF12-1234-5678-9ABC-DEF012345678", true},
		{"no identifier in this line", "", false},
		{"truncated 123e4567-e89b-12d3-a456 token", "", false},
	}

	for _, tt := range tests {
		got, found := CorrelationID(tt.line)
		if found != tt.found || got != tt.expected {
			t.Errorf("CorrelationID(%q) = (%q, %v), want (%q, %v)",
				tt.line, got, found, tt.expected, tt.found)
		}
	}
}

func TestSessionID(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		found    bool
	}{
		{"terminating session id: 12345", "12345", true},
		{"Session ID 777 was dropped", "777", true},
		{"session identifier missing", "", false},
		{"session id none", "", false},
	}

	for _, tt := range tests {
		got, found := SessionID(tt.line)
		if found != tt.found || got != tt.expected {
			t.Errorf("SessionID(%q) = (%q, %v), want (%q, %v)",
				tt.line, got, found, tt.expected, tt.found)
		}
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2025-04-10T12:00:00", time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC), true},
		{"2025-04-10 12:00:00", time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC), true},
		{"2025-04-10", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2025", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseInstant(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseInstant(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.expected) {
			t.Errorf("ParseInstant(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
