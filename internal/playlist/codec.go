// package playlist handles playlist files: the line-oriented text codec,
// directory-backed storage, interactive construction, and in-memory editing.
//
// A playlist file holds one song per line:
//
//	Song Title: Bruises, Duration: 210
//
// [Encode] and [Decode] are inverses over well-formed entries. Decode skips
// lines it cannot parse rather than failing the whole file, so a hand-edited
// playlist with a stray line still loads.
package playlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	titlePrefix       = "Song Title: "
	durationSeparator = ", Duration: "
)

// Entry is one line of a playlist file.
//
// Duration stays a verbatim string: the codec reproduces exactly what it
// read, and the file format carries no unit.
type Entry struct {
	Title    string
	Duration string
}

// String formats the entry as its file line, without the trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("%s%s%s%s", titlePrefix, e.Title, durationSeparator, e.Duration)
}

// Encode writes entries to w, one line each, in order.
func Encode(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s\n", entry.String()); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}

// Decode reads entries from r, skipping lines that do not parse.
//
// A line parses when it contains the duration separator exactly once; the
// title prefix is stripped when present. Blank lines are skipped.
func Decode(r io.Reader) ([]Entry, error) {
	entries := []Entry{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}

	return entries, nil
}

// parseLine splits a single playlist line into an [Entry].
func parseLine(line string) (Entry, bool) {
	parts := strings.Split(line, durationSeparator)
	if len(parts) != 2 {
		return Entry{}, false
	}

	title := strings.TrimPrefix(parts[0], titlePrefix)

	return Entry{Title: title, Duration: parts[1]}, true
}
