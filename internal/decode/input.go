package decode

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/muurk/rpmlog/internal/logging"
)

// ReadLines loads a whole log file and splits it into lines. The returned
// size is the file length in bytes.
func ReadLines(fs afero.Fs, path string) ([]string, int64, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read log file: %w", err)
	}

	lines := SplitLines(string(data))
	logging.LogFileLoaded("ulog", path, int64(len(data)), len(lines))
	return lines, int64(len(data)), nil
}

// SplitLines splits text on newlines, dropping CRs and the empty string after
// a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
