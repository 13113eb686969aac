package testsupport

import (
	"context"
	"fmt"

	"mpdselect/internal/mpd"
	"mpdselect/internal/picker"
	"mpdselect/internal/player"
)

// Catalog is an in-memory selector.Catalog.
type Catalog struct {
	Artists   []string
	Albums    map[string][]mpd.AlbumIdentity // keyed by artist, "" for catalog-wide
	Songs     map[string][]string            // keyed by "artist\x00album", "\x00" for all songs
	Tracks    []mpd.Track
	StatusMap map[string]string
	// SongAlbums maps "artist\x00title" to the album FindSongAlbum reports.
	SongAlbums map[string]string
	Err        error
}

func (c *Catalog) ListArtists() ([]string, error) {
	return c.Artists, c.Err
}

func (c *Catalog) ListAlbums(artist string) ([]mpd.AlbumIdentity, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Albums[artist], nil
}

func (c *Catalog) ListSongs(artist, album string) ([]string, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Songs[artist+"\x00"+album], nil
}

func (c *Catalog) Playlist() ([]mpd.Track, error) {
	return c.Tracks, c.Err
}

func (c *Catalog) Status() (map[string]string, error) {
	return c.StatusMap, c.Err
}

func (c *Catalog) FindSongAlbum(artist, title string) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.SongAlbums[artist+"\x00"+title], nil
}

// ScriptedPicker replays canned results and records every request.
type ScriptedPicker struct {
	Results  []picker.Result
	Requests []picker.Request
}

func (p *ScriptedPicker) Select(_ context.Context, req picker.Request) (picker.Result, error) {
	p.Requests = append(p.Requests, req)
	if len(p.Results) == 0 {
		return picker.Result{Index: -1}, nil
	}
	result := p.Results[0]
	p.Results = p.Results[1:]
	return result, nil
}

// RecordingPlayer records queue operations as formatted call strings.
type RecordingPlayer struct {
	Calls  []string
	Titles []string
	Locked int
	Err    error
}

func (p *RecordingPlayer) Clear(context.Context) error {
	p.Calls = append(p.Calls, "clear")
	return p.Err
}

func (p *RecordingPlayer) Add(_ context.Context, filter player.Filter) error {
	p.Calls = append(p.Calls, fmt.Sprintf("add artist=%q album=%q title=%q", filter.Artist, filter.Album, filter.Title))
	return p.Err
}

func (p *RecordingPlayer) QueueTitles(context.Context) ([]string, error) {
	p.Calls = append(p.Calls, "queue-titles")
	return p.Titles, p.Err
}

func (p *RecordingPlayer) Play(context.Context) error {
	p.Calls = append(p.Calls, "play")
	return p.Err
}

func (p *RecordingPlayer) PlayPosition(_ context.Context, position int) error {
	p.Calls = append(p.Calls, fmt.Sprintf("play-position %d", position))
	return p.Err
}

func (p *RecordingPlayer) Lock(context.Context) (func(), error) {
	p.Locked++
	return func() {}, nil
}

// RecordingNotifier records notification events as formatted strings.
type RecordingNotifier struct {
	Events []string
}

func (n *RecordingNotifier) NowPlaying(_ context.Context, artist, album, title string) error {
	n.Events = append(n.Events, fmt.Sprintf("now-playing %s/%s/%s", artist, album, title))
	return nil
}

func (n *RecordingNotifier) NowPlayingAlbum(_ context.Context, artist, album string) error {
	n.Events = append(n.Events, fmt.Sprintf("now-playing-album %s/%s", artist, album))
	return nil
}

func (n *RecordingNotifier) Queued(_ context.Context, artist, album, title string) error {
	n.Events = append(n.Events, fmt.Sprintf("queued %s/%s/%s", artist, album, title))
	return nil
}

func (n *RecordingNotifier) TestNotification(context.Context) error {
	n.Events = append(n.Events, "test")
	return nil
}
