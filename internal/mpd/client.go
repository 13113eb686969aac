package mpd

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

const (
	greetingSentinel = "OK MPD"
	responseOK       = "OK"
	errorSentinel    = "ACK"
)

// ErrHandshake marks a connection whose greeting did not carry the MPD
// sentinel. It is fatal; the connection is closed before it is returned.
var ErrHandshake = errors.New("mpd handshake failed")

// CommandError is a server-side rejection of a single command. The message is
// the server's error line verbatim.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("mpd command %q failed: %s", e.Command, e.Message)
}

// Client owns one MPD connection.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to the MPD server at address and validates its greeting.
func Dial(address string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return nil, fmt.Errorf("connect to mpd at %s: %w", address, err)
	}
	reader := bufio.NewReader(conn)
	greeting, err := reader.ReadString('\n')
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: read greeting: %w", ErrHandshake, err)
	}
	if !strings.HasPrefix(greeting, greetingSentinel) {
		conn.Close()
		return nil, fmt.Errorf("%w: unexpected greeting %q", ErrHandshake, strings.TrimSpace(greeting))
	}
	return &Client{conn: conn, reader: reader}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Command sends one command line and reads lines until the terminal OK,
// returning the response body. An error-sentinel line surfaces as a
// *CommandError with no partial body.
func (c *Client) Command(command string) ([]string, error) {
	if _, err := fmt.Fprintf(c.conn, "%s\n", command); err != nil {
		return nil, fmt.Errorf("send %q: %w", command, err)
	}

	var lines []string
	for {
		raw, err := c.reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read response to %q: %w", command, err)
		}
		line := strings.TrimSpace(raw)
		if line == responseOK {
			return lines, nil
		}
		if strings.HasPrefix(line, errorSentinel) {
			return nil, &CommandError{Command: command, Message: line}
		}
		lines = append(lines, line)
	}
}

// ListArtists returns the distinct album artists in server order, with empty
// names filtered out.
func (c *Client) ListArtists() ([]string, error) {
	lines, err := c.Command("list albumartist")
	if err != nil {
		return nil, err
	}
	var artists []string
	for _, line := range lines {
		if name, ok := strings.CutPrefix(line, "AlbumArtist: "); ok && strings.TrimSpace(name) != "" {
			artists = append(artists, name)
		}
	}
	return artists, nil
}

// ListAlbums returns the albums under artist, or every album in the catalog
// when artist is empty. Duplicate (artist, album) pairs collapse to one
// entry; the order of results carries no meaning.
func (c *Client) ListAlbums(artist string) ([]AlbumIdentity, error) {
	command := "listallinfo"
	if artist != "" {
		command = fmt.Sprintf("find albumartist %s", quote(artist))
	}
	lines, err := c.Command(command)
	if err != nil {
		return nil, err
	}

	seen := make(map[AlbumIdentity]struct{})
	var albums []AlbumIdentity
	for _, track := range parseTracks(lines) {
		if track.Artist == "" || track.Album == "" {
			continue
		}
		id := AlbumIdentity{Artist: track.Artist, Album: track.Album}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		albums = append(albums, id)
	}
	return albums, nil
}

// ListSongs returns song titles. With both artist and album set it returns
// the titles of that album in server order; with both empty it returns
// "artist\ttitle" lines for the whole catalog, where the tab is a structural
// separator callers split on.
func (c *Client) ListSongs(artist, album string) ([]string, error) {
	command := "listallinfo"
	scoped := artist != "" && album != ""
	if scoped {
		command = fmt.Sprintf("find albumartist %s album %s", quote(artist), quote(album))
	}
	lines, err := c.Command(command)
	if err != nil {
		return nil, err
	}

	var songs []string
	for _, track := range parseTracks(lines) {
		if track.Title == "" {
			continue
		}
		if scoped {
			songs = append(songs, track.Title)
		} else {
			songs = append(songs, track.Artist+"\t"+track.Title)
		}
	}
	return songs, nil
}

// Playlist returns the current queue in server-reported order.
func (c *Client) Playlist() ([]Track, error) {
	lines, err := c.Command("playlistinfo")
	if err != nil {
		return nil, err
	}
	return parseTracks(lines), nil
}

// Status returns the server status map, rebuilt fresh on every call.
func (c *Client) Status() (map[string]string, error) {
	lines, err := c.Command("status")
	if err != nil {
		return nil, err
	}
	return parseStatus(lines), nil
}

// FindSongAlbum returns the first album containing an exact (artist, title)
// match, or the empty string when no match exists. A miss is not an error.
func (c *Client) FindSongAlbum(artist, title string) (string, error) {
	command := fmt.Sprintf("find albumartist %s title %s", quote(artist), quote(title))
	lines, err := c.Command(command)
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		if album, ok := strings.CutPrefix(line, "Album: "); ok {
			return album, nil
		}
	}
	return "", nil
}

// quote wraps an argument in the protocol's double-quoted string literal
// syntax, backslash-escaping embedded quotes.
func quote(arg string) string {
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}
