// Package words provides dictionary sources for the hangman engine.
// A source returns raw lines, one candidate word per line; trimming and
// filtering by length happen in the engine.
package words

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:embed dictionary.txt
var embeddedDictionary string

// BuiltinID names the dictionary compiled into the binary.
const BuiltinID = "builtin"

// Source loads the raw lines of a dictionary.
// An empty result is valid and means the dictionary has no candidates.
type Source interface {
	LoadWords(ctx context.Context, sourceID string) ([]string, error)
}

// Embedded serves the built-in dictionary. Any sourceID other than
// "" or BuiltinID is rejected.
type Embedded struct{}

// LoadWords returns the built-in dictionary lines.
func (Embedded) LoadWords(ctx context.Context, sourceID string) ([]string, error) {
	if sourceID != "" && sourceID != BuiltinID {
		return nil, fmt.Errorf("words: unknown builtin dictionary %q", sourceID)
	}
	return readLines(ctx, strings.NewReader(embeddedDictionary))
}

// File reads a dictionary from a plain-text file. The sourceID is the path;
// a leading ~ expands to the home directory.
type File struct{}

// LoadWords reads every line of the file at sourceID.
func (File) LoadWords(ctx context.Context, sourceID string) ([]string, error) {
	path, err := expandHome(sourceID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open dictionary %s: %w", path, err)
	}
	defer f.Close()

	lines, err := readLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read dictionary %s: %w", path, err)
	}
	return lines, nil
}

// readLines splits r into lines, checking ctx between lines.
func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func expandHome(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("words: empty dictionary path")
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("words: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
