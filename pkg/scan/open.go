package scan

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// openFile opens a log file, automatically decompressing if it's
// gzip-compressed. Returns the reader, a cleanup function (to close
// resources), and any error. The caller must call the cleanup function
// when done reading.
func openFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	if isGzipFile(path) {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		cleanup := func() error {
			gzReader.Close()
			return file.Close()
		}
		return gzReader, cleanup, nil
	}

	cleanup := func() error {
		return file.Close()
	}
	return file, cleanup, nil
}

// isGzipFile returns true if the file path indicates gzip compression.
func isGzipFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// stripCompression removes the compression extension (.gz) from a path.
func stripCompression(path string) string {
	if isGzipFile(path) {
		return path[:len(path)-3]
	}
	return path
}

// baseExt extracts the log extension after stripping compression.
// e.g. "psm.txt.gz" -> ".txt", "session.log" -> ".log"
func baseExt(path string) string {
	return strings.ToLower(filepath.Ext(stripCompression(path)))
}
