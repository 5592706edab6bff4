package scan

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/logsift/logsift/pkg/signature"
)

func testRegistry(t *testing.T) *signature.Registry {
	t.Helper()
	reg, err := signature.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	return reg
}

func TestScanner_ScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "psm.txt")
	content := "normal startup line\n" +
		"2025-04-10 12:00:00 nsUtils failed err: 5\n" +
		"another quiet line\n" +
		"HTTP response code: 403 for session id: 42\n"
	writeFile(t, path, content)

	s := NewScanner(testRegistry(t), DefaultConfig())
	occs, err := s.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}

	if len(occs) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(occs))
	}

	first := occs[0]
	if first.ErrorName != "NetworkError" {
		t.Errorf("ErrorName = %q, want NetworkError", first.ErrorName)
	}
	if first.Line != 2 {
		t.Errorf("Line = %d, want 2 (1-based)", first.Line)
	}
	if first.Timestamp != "2025-04-10T12:00:00" {
		t.Errorf("Timestamp = %q, want 2025-04-10T12:00:00", first.Timestamp)
	}
	if first.Message != "2025-04-10 12:00:00 nsUtils failed err: 5" {
		t.Errorf("Message = %q, want trimmed raw line", first.Message)
	}

	second := occs[1]
	if second.ErrorName != "Proxy403" {
		t.Errorf("ErrorName = %q, want Proxy403", second.ErrorName)
	}
	if second.Line != 4 {
		t.Errorf("Line = %d, want 4", second.Line)
	}
	if second.SessionID != "42" {
		t.Errorf("SessionID = %q, want 42", second.SessionID)
	}
}

func TestScanner_OneOccurrencePerLine(t *testing.T) {
	reg, err := signature.NewRegistry([]signature.Definition{
		{Name: "Alpha", Pattern: `failure`},
		{Name: "Beta", Pattern: `failure in beta`},
	})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	writeFile(t, path, "failure in beta subsystem\n")

	s := NewScanner(reg, DefaultConfig())
	occs, err := s.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}

	if len(occs) != 1 {
		t.Fatalf("got %d occurrences, want 1 (a line is owned by one signature)", len(occs))
	}
	if occs[0].ErrorName != "Alpha" {
		t.Errorf("ErrorName = %q, want Alpha (earliest-registered wins)", occs[0].ErrorName)
	}
}

func TestScanner_InvalidBytesTolerated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirty.txt")

	content := append([]byte("HTTP response code: 403 "), 0xff, 0xfe)
	content = append(content, []byte(" tail\nclean line\n")...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(testRegistry(t), DefaultConfig())
	occs, err := s.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if len(occs) != 1 || occs[0].ErrorName != "Proxy403" {
		t.Fatalf("occs = %v, want one Proxy403 despite invalid bytes", occs)
	}
}

func TestScanner_GzipFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archived.txt.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("Ticket ID was not found\n")); err != nil {
		t.Fatal(err)
	}
	gz.Close()
	f.Close()

	s := NewScanner(testRegistry(t), DefaultConfig())
	occs, err := s.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if len(occs) != 1 || occs[0].ErrorName != "Auth_TicketMissing" {
		t.Fatalf("occs = %v, want one Auth_TicketMissing from gzip content", occs)
	}
}

func TestScanner_MissingFile(t *testing.T) {
	s := NewScanner(testRegistry(t), DefaultConfig())
	if _, err := s.ScanFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScanner_NoFinalNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	writeFile(t, path, "line one\nHTTP response code: 403")

	s := NewScanner(testRegistry(t), DefaultConfig())
	occs, err := s.ScanFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if len(occs) != 1 || occs[0].Line != 2 {
		t.Fatalf("occs = %+v, want last unterminated line matched at line 2", occs)
	}
}
