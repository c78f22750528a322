// assets/embed.go
//
// Embedded default word lists and puzzle list, used when no files are
// configured through the environment.
//   - main.txt:     candidate answers, one per line
//   - excluded.txt: words never accepted (profanity filter)
//   - puzzles.txt:  "required optional" letter pairs, one puzzle per line

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed main.txt excluded.txt puzzles.txt
var FS embed.FS

// readText returns the full contents of an embedded file.
func readText(name string) (string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	return string(b), err
}

// readLines returns non-blank, non-comment lines, trimmed and lowercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// MainText is the raw default lexicon.
func MainText() (string, error) {
	return readText("main.txt")
}

// ExcludedText is the raw default exclusion list.
func ExcludedText() (string, error) {
	return readText("excluded.txt")
}

// PuzzleLines returns the default puzzle definitions.
func PuzzleLines() ([]string, error) {
	return readLines("puzzles.txt")
}
