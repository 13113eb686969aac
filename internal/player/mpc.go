package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

var commandContext = exec.CommandContext

// Filter scopes an additive queue request. At least one field must be set;
// empty fields are omitted from the request.
type Filter struct {
	Artist string
	Album  string
	Title  string
}

// Player is the playback-queue surface the dispatcher drives.
type Player interface {
	// Clear empties the active queue.
	Clear(ctx context.Context) error
	// Add enqueues every track matching the filter without clearing.
	Add(ctx context.Context, filter Filter) error
	// QueueTitles lists the titles of the current queue in order.
	QueueTitles(ctx context.Context) ([]string, error)
	// Play starts playback from the top of the queue.
	Play(ctx context.Context) error
	// PlayPosition jumps playback to a 1-based queue position.
	PlayPosition(ctx context.Context, position int) error
	// Lock serializes a mutating command sequence against other processes.
	// The returned release func must be called once the sequence is done.
	Lock(ctx context.Context) (release func(), err error)
}

// Option configures the mpc client.
type Option func(*MPC)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *MPC) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithLockFile sets the advisory lock path. An empty path disables locking.
func WithLockFile(path string) Option {
	return func(c *MPC) {
		c.lockFile = path
	}
}

// MPC wraps the mpc command-line client.
type MPC struct {
	binary   string
	lockFile string
}

// NewMPC constructs an mpc client using defaults.
func NewMPC(opts ...Option) *MPC {
	c := &MPC{binary: "mpc"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MPC) Clear(ctx context.Context) error {
	_, err := c.run(ctx, "clear")
	return err
}

func (c *MPC) Add(ctx context.Context, filter Filter) error {
	args := []string{"findadd"}
	if filter.Artist != "" {
		args = append(args, "albumartist", filter.Artist)
	}
	if filter.Album != "" {
		args = append(args, "album", filter.Album)
	}
	if filter.Title != "" {
		args = append(args, "title", filter.Title)
	}
	if len(args) == 1 {
		return errors.New("empty queue filter")
	}
	_, err := c.run(ctx, args...)
	return err
}

func (c *MPC) QueueTitles(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "playlist", "-f", "%title%")
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

func (c *MPC) Play(ctx context.Context) error {
	_, err := c.run(ctx, "play")
	return err
}

func (c *MPC) PlayPosition(ctx context.Context, position int) error {
	if position < 1 {
		return fmt.Errorf("queue position %d out of range", position)
	}
	_, err := c.run(ctx, "play", strconv.Itoa(position))
	return err
}

// Lock takes the advisory queue lock. With no lock file configured it
// returns a no-op release.
func (c *MPC) Lock(ctx context.Context) (func(), error) {
	if c.lockFile == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.lockFile), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(c.lockFile)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire queue lock %s: %w", c.lockFile, err)
	}
	return func() { _ = lock.Unlock() }, nil
}

func (c *MPC) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := commandContext(ctx, c.binary, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.binary, strings.Join(args, " "), err)
	}
	return out, nil
}

var _ Player = (*MPC)(nil)
