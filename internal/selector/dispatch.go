package selector

import (
	"context"
	"fmt"
	"slices"

	"mpdselect/internal/mpd"
	"mpdselect/internal/picker"
	"mpdselect/internal/player"
)

// playSong dispatches a fully narrowed song. An empty album is looked up from
// the catalog first; when the lookup also misses, the request proceeds
// without an album scope.
func (s *Selector) playSong(ctx context.Context, artist, album, title string, mode picker.Mode) error {
	if album == "" {
		found, err := s.catalog.FindSongAlbum(artist, title)
		if err != nil {
			return err
		}
		album = found
	}

	if mode == picker.ModeAlternate {
		filter := player.Filter{Artist: artist, Album: album, Title: title}
		if err := s.player.Add(ctx, filter); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Queued:\n%s\n%s\n%s\n", artist, album, title)
		s.notify(s.notifier.Queued(ctx, artist, album, title))
		return nil
	}

	release, err := s.player.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.player.Clear(ctx); err != nil {
		return err
	}
	if err := s.player.Add(ctx, player.Filter{Artist: artist, Album: album}); err != nil {
		return err
	}

	titles, err := s.player.QueueTitles(ctx)
	if err != nil {
		return err
	}
	position := slices.Index(titles, title)
	if position < 0 {
		// Duplicate titles or a race with server state; degrade to playing
		// the album from the top.
		if err := s.player.Play(ctx); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Could not find song %q in playlist\n", title)
		s.notify(s.notifier.NowPlayingAlbum(ctx, artist, album))
		return nil
	}

	if err := s.player.PlayPosition(ctx, position+1); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Playing:\n%s\n%s\n%s\n", artist, album, title)
	s.notify(s.notifier.NowPlaying(ctx, artist, album, title))
	return nil
}

// playAlbum clears the queue, enqueues the whole album, and starts playback
// from the top.
func (s *Selector) playAlbum(ctx context.Context, album mpd.AlbumIdentity, label string) error {
	release, err := s.player.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := s.player.Clear(ctx); err != nil {
		return err
	}
	if err := s.player.Add(ctx, player.Filter{Artist: album.Artist, Album: album.Album}); err != nil {
		return err
	}
	if err := s.player.Play(ctx); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s\n%s\n%s\n", label, album.Artist, album.Album)
	s.notify(s.notifier.NowPlayingAlbum(ctx, album.Artist, album.Album))
	return nil
}

// queueAlbum enqueues a whole album additively, never touching the existing
// queue.
func (s *Selector) queueAlbum(ctx context.Context, album mpd.AlbumIdentity) error {
	if err := s.player.Add(ctx, player.Filter{Artist: album.Artist, Album: album.Album}); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Queued:\n%s\n%s\n", album.Artist, album.Album)
	s.notify(s.notifier.Queued(ctx, album.Artist, album.Album, ""))
	return nil
}

// notify drops notification failures after logging them; delivery is
// cosmetic.
func (s *Selector) notify(err error) {
	if err != nil {
		s.logger.Debug("notification failed", "error", err)
	}
}
