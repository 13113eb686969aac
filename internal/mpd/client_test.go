package mpd_test

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"mpdselect/internal/mpd"
	"mpdselect/internal/testsupport"
)

const dialTimeout = 2 * time.Second

func dial(t *testing.T, server *testsupport.MPDServer) *mpd.Client {
	t.Helper()
	client, err := mpd.Dial(server.Addr, dialTimeout)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestDialRejectsBadGreeting(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.SetGreeting("HELLO 1.0\n")

	_, err := mpd.Dial(server.Addr, dialTimeout)
	if !errors.Is(err, mpd.ErrHandshake) {
		t.Fatalf("expected handshake error, got %v", err)
	}
}

func TestCommandErrorCarriesServerMessage(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Fail("status", "problems parsing command")

	client := dial(t, server)
	_, err := client.Status()
	var cmdErr *mpd.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if !strings.Contains(cmdErr.Message, "problems parsing command") {
		t.Fatalf("expected server message in error, got %q", cmdErr.Message)
	}
}

func TestListArtistsFiltersEmptyNames(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle("list albumartist",
		"AlbumArtist: Boards",
		"AlbumArtist: ",
		"AlbumArtist: Autechre",
	)

	client := dial(t, server)
	artists, err := client.ListArtists()
	if err != nil {
		t.Fatalf("ListArtists: %v", err)
	}
	if !reflect.DeepEqual(artists, []string{"Boards", "Autechre"}) {
		t.Fatalf("unexpected artists: %v", artists)
	}
}

func TestListAlbumsCollapsesDuplicates(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle("listallinfo",
		"AlbumArtist: Boards",
		"Album: Geogaddi",
		"file: 01.flac",
		"AlbumArtist: Boards",
		"Album: Geogaddi",
		"file: 02.flac",
		"AlbumArtist: Autechre",
		"Album: Tri Repetae",
		"file: 03.flac",
		"Album: Untitled",
		"file: 04.flac",
	)

	client := dial(t, server)
	albums, err := client.ListAlbums("")
	if err != nil {
		t.Fatalf("ListAlbums: %v", err)
	}
	want := []mpd.AlbumIdentity{
		{Artist: "Boards", Album: "Geogaddi"},
		{Artist: "Autechre", Album: "Tri Repetae"},
	}
	if !reflect.DeepEqual(albums, want) {
		t.Fatalf("unexpected albums: %v", albums)
	}
}

func TestListAlbumsQuotesArtistFilter(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle(`find albumartist "Guns \"N\" Roses"`)

	client := dial(t, server)
	if _, err := client.ListAlbums(`Guns "N" Roses`); err != nil {
		t.Fatalf("ListAlbums: %v", err)
	}
	if !slices.Contains(server.Requests(), `find albumartist "Guns \"N\" Roses"`) {
		t.Fatalf("expected escaped filter in requests, got %v", server.Requests())
	}
}

func TestListSongsScopedReturnsTitlesInOrder(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle(`find albumartist "Boards" album "Geogaddi"`,
		"Title: Ready Lets Go",
		"file: 01.flac",
		"Title: Sunshine Recorder",
		"file: 02.flac",
		"file: hidden.flac",
	)

	client := dial(t, server)
	songs, err := client.ListSongs("Boards", "Geogaddi")
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if !reflect.DeepEqual(songs, []string{"Ready Lets Go", "Sunshine Recorder"}) {
		t.Fatalf("unexpected songs: %v", songs)
	}
}

func TestListSongsCatalogWideUsesTabSeparator(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle("listallinfo",
		"AlbumArtist: Boards",
		"Title: Ready Lets Go",
		"file: 01.flac",
	)

	client := dial(t, server)
	songs, err := client.ListSongs("", "")
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if !reflect.DeepEqual(songs, []string{"Boards\tReady Lets Go"}) {
		t.Fatalf("unexpected songs: %v", songs)
	}
}

func TestPlaylistPreservesServerOrder(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle("playlistinfo",
		"AlbumArtist: Boards",
		"Album: Geogaddi",
		"Title: Ready Lets Go",
		"Track: 1/10",
		"file: 01.flac",
		"Title: Sunshine Recorder",
		"file: 02.flac",
	)

	client := dial(t, server)
	tracks, err := client.Playlist()
	if err != nil {
		t.Fatalf("Playlist: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].Title != "Ready Lets Go" || tracks[1].Title != "Sunshine Recorder" {
		t.Fatalf("unexpected order: %+v", tracks)
	}
}

func TestFindSongAlbum(t *testing.T) {
	server := testsupport.NewMPDServer(t)
	server.Handle(`find albumartist "Boards" title "Sunshine Recorder"`,
		"Album: Geogaddi",
		"file: 02.flac",
	)
	server.Handle(`find albumartist "Boards" title "Missing"`)

	client := dial(t, server)
	album, err := client.FindSongAlbum("Boards", "Sunshine Recorder")
	if err != nil {
		t.Fatalf("FindSongAlbum: %v", err)
	}
	if album != "Geogaddi" {
		t.Fatalf("expected Geogaddi, got %q", album)
	}

	album, err = client.FindSongAlbum("Boards", "Missing")
	if err != nil {
		t.Fatalf("FindSongAlbum miss: %v", err)
	}
	if album != "" {
		t.Fatalf("expected empty album on miss, got %q", album)
	}
}
