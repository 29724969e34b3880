package tui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadBackground reads a text-art file for the scene backdrop.
// An empty path means no backdrop. A file that cannot be read is an error.
func LoadBackground(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot load background %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tui: cannot load background %q: %w", path, err)
	}
	return lines, nil
}
