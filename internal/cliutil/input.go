package cliutil

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the conventional argument that selects stdin as the input
// source.
const StdinPath = "-"

// ReadInput reads the contents of path, or of stdin when path is StdinPath.
func ReadInput(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cliutil: reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cliutil: reading %s: %w", path, err)
	}
	return data, nil
}

// DisplayPath returns a display-friendly name for an input path.
// StdinPath renders as "<stdin>"; everything else is returned as-is.
func DisplayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
