package mpd

// Track is one catalog or playlist record. Any tag may be empty when the
// server does not report it; File is always present because its line is what
// completes the record.
type Track struct {
	Artist string
	Album  string
	Title  string
	// Number is the raw track tag, possibly in "N/M" form.
	Number string
	File   string
}

// AlbumIdentity names one album by its album artist and title.
type AlbumIdentity struct {
	Artist string
	Album  string
}
