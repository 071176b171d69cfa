package cli

import (
	"io"
	"os"
)

// openOutput opens path for writing, or returns stdout when path is empty.
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
