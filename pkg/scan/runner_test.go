package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.txt")
	fileB := filepath.Join(dir, "b.txt")
	writeFile(t, fileA, "HTTP response code: 403\n")
	writeFile(t, fileB, "HTTP response code: 403\n")

	r := NewRunner(testRegistry(t), DefaultConfig())
	result, err := r.Run(context.Background(), []string{fileA, fileB})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Occurrences) != 2 {
		t.Fatalf("occurrences = %d, want 2", len(result.Occurrences))
	}
	if len(result.Summary) != 1 {
		t.Fatalf("summary entries = %d, want 1", len(result.Summary))
	}

	entry := result.Summary[0]
	if entry.ErrorName != "Proxy403" || entry.Count != 2 {
		t.Errorf("entry = %s/%d, want Proxy403/2", entry.ErrorName, entry.Count)
	}
	if len(entry.Files) != 2 {
		t.Errorf("affected files = %v, want both files", entry.Files)
	}
}

func TestRunner_UnreadableFileSkipped(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeFile(t, good, "Ticket ID was not found\n")
	missing := filepath.Join(dir, "gone.txt")

	var warnings []string
	r := NewRunner(testRegistry(t), DefaultConfig())
	r.SetWarnFunc(func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})

	result, err := r.Run(context.Background(), []string{missing, good})
	if err != nil {
		t.Fatalf("Run must not fail for a single unreadable file: %v", err)
	}

	if result.FilesSkipped != 1 || result.FilesScanned != 1 {
		t.Errorf("scanned/skipped = %d/%d, want 1/1", result.FilesScanned, result.FilesSkipped)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", warnings)
	}
	if len(result.Occurrences) != 1 {
		t.Errorf("occurrences = %d, want 1 from the readable file", len(result.Occurrences))
	}
}

func TestRunner_EmptyFileSet(t *testing.T) {
	r := NewRunner(testRegistry(t), DefaultConfig())
	if _, err := r.Run(context.Background(), nil); !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("err = %v, want ErrNoInputFiles", err)
	}
}

func TestRunner_CountInvariant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.txt")
	writeFile(t, path, "HTTP response code: 403\n"+
		"Ticket ID was not found\n"+
		"HTTP response code: 403\n"+
		"nothing to see\n"+
		"CTunnelMgr: No tunnel found\n")

	r := NewRunner(testRegistry(t), DefaultConfig())
	result, err := r.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	sum := 0
	for _, entry := range result.Summary {
		sum += entry.Count
	}
	if sum != len(result.Occurrences) {
		t.Errorf("sum of counts = %d, occurrences = %d; must be equal", sum, len(result.Occurrences))
	}
}

func TestRunner_DeterministicAcrossWorkerCounts(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 6; i++ {
		path := filepath.Join(dir, fmt.Sprintf("f%d.txt", i))
		writeFile(t, path, fmt.Sprintf("2025-04-%02d 10:00:00 nsUtils failed err: 5\nHTTP response code: 403\n", i+1))
		files = append(files, path)
	}

	sequential := NewRunner(testRegistry(t), Config{Workers: 1})
	parallel := NewRunner(testRegistry(t), Config{Workers: 4})

	seqResult, err := sequential.Run(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	parResult, err := parallel.Run(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(seqResult.Summary, parResult.Summary) {
		t.Error("summary differs between worker counts")
	}
	if !reflect.DeepEqual(seqResult.Occurrences, parResult.Occurrences) {
		t.Error("occurrence order differs between worker counts")
	}
}

func TestRunner_ProgressCallback(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.txt")
	writeFile(t, fileA, "quiet\n")

	var calls int64
	r := NewRunner(testRegistry(t), Config{Workers: 1})
	r.SetProgressFunc(func(done, total int64) {
		calls++
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}
	})

	if _, err := r.Run(context.Background(), []string{fileA}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("progress calls = %d, want 1", calls)
	}
}

func TestRunner_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "HTTP response code: 403\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(testRegistry(t), DefaultConfig())
	if _, err := r.Run(ctx, []string{path}); !errors.Is(err, ErrContextCanceled) {
		t.Fatalf("err = %v, want ErrContextCanceled", err)
	}
}
