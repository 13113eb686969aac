package selector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"mpdselect/internal/mpd"
	"mpdselect/internal/notifications"
	"mpdselect/internal/picker"
	"mpdselect/internal/player"
	"mpdselect/internal/quarantine"
)

// Catalog is the read side of the music library the pipeline narrows over.
// *mpd.Client satisfies it.
type Catalog interface {
	ListArtists() ([]string, error)
	ListAlbums(artist string) ([]mpd.AlbumIdentity, error)
	ListSongs(artist, album string) ([]string, error)
	Playlist() ([]mpd.Track, error)
	Status() (map[string]string, error)
	FindSongAlbum(artist, title string) (string, error)
}

// Selector owns one selection pipeline run's collaborators.
type Selector struct {
	catalog        Catalog
	picker         picker.Picker
	player         player.Player
	notifier       notifications.Service
	rng            *rand.Rand
	out            io.Writer
	logger         *slog.Logger
	quarantinePath string
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand injects the randomness source used for shuffled presentation and
// random album picks. Tests pass a seeded generator.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithOutput redirects user-facing notices, which default to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Selector) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithQuarantinePath sets the quarantine list location.
func WithQuarantinePath(path string) Option {
	return func(s *Selector) {
		s.quarantinePath = path
	}
}

// New constructs a Selector around its collaborators.
func New(catalog Catalog, pick picker.Picker, play player.Player, notify notifications.Service, opts ...Option) *Selector {
	s := &Selector{
		catalog:  catalog,
		picker:   pick,
		player:   play,
		notifier: notify,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))),
		out:      os.Stdout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunArtist narrows artist, then album, then song.
func (s *Selector) RunArtist(ctx context.Context, preselect int) error {
	artist, ok, err := s.selectArtist(ctx)
	if err != nil || !ok {
		return err
	}
	return s.albumThenSong(ctx, artist, preselect)
}

// RunAlbum starts at the album stage. A pre-supplied artist narrows the album
// list; a pre-supplied artist and album skip straight to the song stage.
func (s *Selector) RunAlbum(ctx context.Context, artist, album string, preselect int) error {
	if artist != "" && album != "" {
		return s.songStage(ctx, mpd.AlbumIdentity{Artist: artist, Album: album}, preselect)
	}
	return s.albumThenSong(ctx, artist, preselect)
}

// RunAllSongs presents every song in the catalog as "artist<TAB>title" items,
// shuffled. No album is known until the dispatcher looks it up.
func (s *Selector) RunAllSongs(ctx context.Context, preselect int) error {
	songs, err := s.catalog.ListSongs("", "")
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		fmt.Fprintln(s.out, "No songs found")
		return nil
	}

	songs = s.shuffled(songs)
	result, err := s.picker.Select(ctx, picker.Request{
		Items:        songs,
		Prompt:       "Choose a song:",
		Selected:     preselect,
		AlignColumns: true,
	})
	if err != nil || result.Cancelled() {
		return err
	}

	artist, title, found := strings.Cut(songs[result.Index], "\t")
	if !found {
		return nil
	}
	return s.playSong(ctx, artist, "", title, result.Mode)
}

// RunRandomAlbum plays one album chosen uniformly at random from the whole
// catalog, bypassing the picker.
func (s *Selector) RunRandomAlbum(ctx context.Context) error {
	albums, err := s.catalog.ListAlbums("")
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		fmt.Fprintln(s.out, "No albums found")
		return nil
	}
	album := albums[s.rng.IntN(len(albums))]
	return s.playAlbum(ctx, album, "Playing random album:")
}

// RunQuarantine selects an album from the quarantine list and continues with
// the song stage, exactly like an album-stage selection.
func (s *Selector) RunQuarantine(ctx context.Context, preselect int) error {
	albums, ok, err := s.quarantineAlbums()
	if err != nil || !ok {
		return err
	}

	album, mode, ok, err := s.pickAlbum(ctx, albums, "Quarantine Album:", true)
	if err != nil || !ok {
		return err
	}
	if mode == picker.ModeAlternate {
		return s.queueAlbum(ctx, album)
	}
	return s.songStage(ctx, album, preselect)
}

// RunRandomQuarantine plays one quarantined album at random, bypassing the
// picker.
func (s *Selector) RunRandomQuarantine(ctx context.Context) error {
	albums, ok, err := s.quarantineAlbums()
	if err != nil || !ok {
		return err
	}
	album := albums[s.rng.IntN(len(albums))]
	return s.playAlbum(ctx, album, "Playing random quarantine album:")
}

// RunPlaylist shows the current queue in server order, pre-selecting the
// playing track, and jumps playback to the chosen position.
func (s *Selector) RunPlaylist(ctx context.Context) error {
	tracks, err := s.catalog.Playlist()
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		fmt.Fprintln(s.out, "Playlist is empty")
		return nil
	}

	status, err := s.catalog.Status()
	if err != nil {
		return err
	}
	current := 0
	if pos, err := strconv.Atoi(status["song"]); err == nil {
		current = pos
	}

	items := make([]string, len(tracks))
	for i, track := range tracks {
		items[i] = playlistLabel(track)
	}

	result, err := s.picker.Select(ctx, picker.Request{
		Items:        items,
		Prompt:       "Playlist:",
		Selected:     current,
		AlignColumns: true,
	})
	if err != nil || result.Cancelled() {
		return err
	}

	if err := s.player.PlayPosition(ctx, result.Index+1); err != nil {
		return err
	}
	track := tracks[result.Index]
	s.notify(s.notifier.NowPlaying(ctx,
		orUnknown(track.Artist, "Unknown Artist"),
		orUnknown(track.Album, "Unknown Album"),
		orUnknown(track.Title, "Unknown Title")))
	return nil
}

// albumThenSong runs the album stage (scoped or combined view) and, unless
// the alternate exit queued the album, the song stage.
func (s *Selector) albumThenSong(ctx context.Context, artist string, preselect int) error {
	albums, err := s.catalog.ListAlbums(artist)
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		fmt.Fprintln(s.out, "No albums found")
		return nil
	}

	s.rng.Shuffle(len(albums), func(i, j int) {
		albums[i], albums[j] = albums[j], albums[i]
	})

	var (
		album mpd.AlbumIdentity
		mode  picker.Mode
		ok    bool
	)
	if artist != "" {
		album, mode, ok, err = s.pickAlbumTitles(ctx, albums)
	} else {
		album, mode, ok, err = s.pickAlbum(ctx, albums, "Album:", true)
	}
	if err != nil || !ok {
		return err
	}
	if mode == picker.ModeAlternate {
		return s.queueAlbum(ctx, album)
	}
	return s.songStage(ctx, album, preselect)
}

// songStage presents an album's songs in server order and dispatches the
// choice.
func (s *Selector) songStage(ctx context.Context, album mpd.AlbumIdentity, preselect int) error {
	songs, err := s.catalog.ListSongs(album.Artist, album.Album)
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		fmt.Fprintln(s.out, "No songs found")
		return nil
	}

	result, err := s.picker.Select(ctx, picker.Request{
		Items:    songs,
		Prompt:   "Choose a song:",
		Selected: preselect,
	})
	if err != nil || result.Cancelled() {
		return err
	}
	return s.playSong(ctx, album.Artist, album.Album, songs[result.Index], result.Mode)
}

// selectArtist presents the shuffled artist list. The alternate exit has no
// coherent meaning for a bare artist, so intent is ignored at this stage.
func (s *Selector) selectArtist(ctx context.Context) (string, bool, error) {
	artists, err := s.catalog.ListArtists()
	if err != nil {
		return "", false, err
	}
	if len(artists) == 0 {
		fmt.Fprintln(s.out, "No artists found")
		return "", false, nil
	}

	artists = s.shuffled(artists)
	result, err := s.picker.Select(ctx, picker.Request{Items: artists, Prompt: "Artist:"})
	if err != nil || result.Cancelled() {
		return "", false, err
	}
	return artists[result.Index], true, nil
}

// pickAlbum presents albums as a combined "artist<TAB>album" two-column view.
func (s *Selector) pickAlbum(ctx context.Context, albums []mpd.AlbumIdentity, prompt string, align bool) (mpd.AlbumIdentity, picker.Mode, bool, error) {
	items := make([]string, len(albums))
	for i, album := range albums {
		items[i] = album.Artist + "\t" + album.Album
	}
	result, err := s.picker.Select(ctx, picker.Request{
		Items:        items,
		Prompt:       prompt,
		AlignColumns: align,
	})
	if err != nil || result.Cancelled() {
		return mpd.AlbumIdentity{}, 0, false, err
	}
	return albums[result.Index], result.Mode, true, nil
}

// pickAlbumTitles presents only album titles; the artist scope is fixed.
func (s *Selector) pickAlbumTitles(ctx context.Context, albums []mpd.AlbumIdentity) (mpd.AlbumIdentity, picker.Mode, bool, error) {
	items := make([]string, len(albums))
	for i, album := range albums {
		items[i] = album.Album
	}
	result, err := s.picker.Select(ctx, picker.Request{Items: items, Prompt: "Album:"})
	if err != nil || result.Cancelled() {
		return mpd.AlbumIdentity{}, 0, false, err
	}
	return albums[result.Index], result.Mode, true, nil
}

// quarantineAlbums loads the quarantine list. Both a missing file and an
// empty list end the flow with a notice.
func (s *Selector) quarantineAlbums() ([]mpd.AlbumIdentity, bool, error) {
	entries, found, err := quarantine.Load(s.quarantinePath)
	if err != nil {
		return nil, false, err
	}
	if !found {
		fmt.Fprintf(s.out, "Quarantine file not found: %s\n", s.quarantinePath)
		return nil, false, nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No quarantine albums found")
		return nil, false, nil
	}

	albums := make([]mpd.AlbumIdentity, len(entries))
	for i, entry := range entries {
		albums[i] = mpd.AlbumIdentity{Artist: entry.Artist, Album: entry.Album}
	}
	return albums, true, nil
}

func (s *Selector) shuffled(items []string) []string {
	shuffledItems := make([]string, len(items))
	copy(shuffledItems, items)
	s.rng.Shuffle(len(shuffledItems), func(i, j int) {
		shuffledItems[i], shuffledItems[j] = shuffledItems[j], shuffledItems[i]
	})
	return shuffledItems
}

// playlistLabel renders one queue entry as "artist<TAB>NN title" with
// placeholders for missing tags. The track number keeps only the N of an
// "N/M" form.
func playlistLabel(track mpd.Track) string {
	artist := orUnknown(track.Artist, "Unknown Artist")
	title := orUnknown(track.Title, "Unknown Title")
	if track.Number != "" {
		number, _, _ := strings.Cut(track.Number, "/")
		if number != "" {
			n, err := strconv.Atoi(number)
			if err != nil {
				n = 0
			}
			title = fmt.Sprintf("%02d %s", n, title)
		}
	}
	return artist + "\t" + title
}

func orUnknown(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
