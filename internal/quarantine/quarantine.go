// Package quarantine loads the user-curated list of albums held out of
// normal random rotation. The file is hand-edited, so parsing is lenient:
// lines that do not match the grammar are skipped, never errors.
package quarantine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// Entry is one quarantined album.
type Entry struct {
	Artist string
	Album  string
}

// lineGrammar matches one `"artist","album"` line. Whitespace is tolerated
// after the comma only; there is no escaping for embedded quotes.
var lineGrammar = regexp.MustCompile(`^"([^"]*)",\s*"([^"]*)"$`)

// Load reads the quarantine file at path. A missing file is not an error: it
// yields no entries with found reporting false so callers can print a notice.
func Load(path string) (entries []Entry, found bool, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read quarantine file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		match := lineGrammar.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		entries = append(entries, Entry{Artist: match[1], Album: match[2]})
	}
	return entries, true, nil
}
