package mpd

import "strings"

// terminatorPrefix marks the field whose line completes a record. The server
// reports it exactly once per entry, so its appearance both emits the
// in-progress record and resets the accumulator.
const terminatorPrefix = "file: "

// trackFields maps recognized response prefixes to track field setters, in
// match order. Lines matching no entry fall through untouched so new server
// fields do not break parsing.
var trackFields = []struct {
	prefix string
	set    func(*Track, string)
}{
	{"AlbumArtist: ", func(t *Track, v string) { t.Artist = v }},
	{"Album: ", func(t *Track, v string) { t.Album = v }},
	{"Title: ", func(t *Track, v string) { t.Title = v }},
	{"Track: ", func(t *Track, v string) { t.Number = v }},
}

// parseTracks folds response lines into complete track records. Field lines
// overwrite the in-progress record, so the emitted value of each tag is the
// last one seen since the previous terminator. No state survives the call.
func parseTracks(lines []string) []Track {
	var (
		current Track
		tracks  []Track
	)
	for _, line := range lines {
		if value, ok := strings.CutPrefix(line, terminatorPrefix); ok {
			current.File = value
			tracks = append(tracks, current)
			current = Track{}
			continue
		}
		for _, field := range trackFields {
			if value, ok := strings.CutPrefix(line, field.prefix); ok {
				field.set(&current, value)
				break
			}
		}
	}
	return tracks
}

// parseStatus turns "key: value" lines into a fresh map. Lines without the
// separator are ignored.
func parseStatus(lines []string) map[string]string {
	status := make(map[string]string, len(lines))
	for _, line := range lines {
		if key, value, ok := strings.Cut(line, ": "); ok {
			status[key] = value
		}
	}
	return status
}
