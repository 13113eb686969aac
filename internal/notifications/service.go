package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"mpdselect/internal/config"
)

const userAgent = "mpdselect/0.1.0"

var commandContext = exec.CommandContext

// Service is the notification surface the dispatcher calls after a
// successful action.
type Service interface {
	NowPlaying(ctx context.Context, artist, album, title string) error
	NowPlayingAlbum(ctx context.Context, artist, album string) error
	Queued(ctx context.Context, artist, album, title string) error
	TestNotification(ctx context.Context) error
}

// NewService selects a backend from config: notify-send for desktop, ntfy
// over HTTP, or a noop when notifications are disabled.
func NewService(cfg *config.Config) Service {
	switch cfg.Notifications.Backend {
	case config.NotifyDesktop:
		timeout := cfg.Notifications.DesktopTimeoutMS
		if timeout <= 0 {
			timeout = 3000
		}
		return &desktopService{binary: "notify-send", timeoutMS: timeout}
	case config.NotifyNtfy:
		topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
		if topic == "" {
			return noopService{}
		}
		timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return &ntfyService{
			endpoint: topic,
			client:   &http.Client{Timeout: timeout},
		}
	default:
		return noopService{}
	}
}

type payload struct {
	summary string
	body    string
}

func nowPlayingPayload(artist, album, title string) payload {
	return payload{summary: "Now Playing", body: joinLines(artist, album, title)}
}

func nowPlayingAlbumPayload(artist, album string) payload {
	return payload{summary: "Now Playing Album", body: joinLines(artist, album)}
}

func queuedPayload(artist, album, title string) payload {
	return payload{summary: "Queued", body: joinLines(artist, album, title)}
}

func joinLines(parts ...string) string {
	kept := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "\n")
}

// desktopService shells out to notify-send.
type desktopService struct {
	binary    string
	timeoutMS int
}

func (d *desktopService) NowPlaying(ctx context.Context, artist, album, title string) error {
	return d.send(ctx, nowPlayingPayload(artist, album, title))
}

func (d *desktopService) NowPlayingAlbum(ctx context.Context, artist, album string) error {
	return d.send(ctx, nowPlayingAlbumPayload(artist, album))
}

func (d *desktopService) Queued(ctx context.Context, artist, album, title string) error {
	return d.send(ctx, queuedPayload(artist, album, title))
}

func (d *desktopService) TestNotification(ctx context.Context) error {
	return d.send(ctx, payload{summary: "mpdselect", body: "Notification test"})
}

func (d *desktopService) send(ctx context.Context, data payload) error {
	cmd := commandContext(ctx, d.binary, "-t", strconv.Itoa(d.timeoutMS), data.summary, data.body)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("send desktop notification: %w", err)
	}
	return nil
}

// ntfyService posts to an ntfy topic URL.
type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NowPlaying(ctx context.Context, artist, album, title string) error {
	return n.send(ctx, nowPlayingPayload(artist, album, title))
}

func (n *ntfyService) NowPlayingAlbum(ctx context.Context, artist, album string) error {
	return n.send(ctx, nowPlayingAlbumPayload(artist, album))
}

func (n *ntfyService) Queued(ctx context.Context, artist, album, title string) error {
	return n.send(ctx, queuedPayload(artist, album, title))
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	return n.send(ctx, payload{summary: "mpdselect", body: "Notification test"})
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.body))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.summary != "" {
		req.Header.Set("Title", data.summary)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NowPlaying(context.Context, string, string, string) error { return nil }
func (noopService) NowPlayingAlbum(context.Context, string, string) error    { return nil }
func (noopService) Queued(context.Context, string, string, string) error     { return nil }
func (noopService) TestNotification(context.Context) error                   { return nil }
