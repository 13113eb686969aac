package picker

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// Mode distinguishes the two user intents a picker interaction can end with.
type Mode int

const (
	// ModeAccept is the normal selection exit, mapped to "play now".
	ModeAccept Mode = iota
	// ModeAlternate is the secondary exit, mapped to "queue for later".
	ModeAlternate
)

// Request describes one list presentation.
type Request struct {
	Items  []string
	Prompt string
	// Selected pre-highlights a zero-based row.
	Selected int
	// AlignColumns pads tab-separated fields into aligned columns before
	// display. Selection indices always refer to the original Items.
	AlignColumns bool
}

// Result carries the outcome of one interaction. Index is -1 when the user
// cancelled; cancellation is a normal termination, not an error.
type Result struct {
	Index int
	Mode  Mode
}

// Cancelled reports whether the user dismissed the picker without choosing.
func (r Result) Cancelled() bool {
	return r.Index < 0
}

// Picker presents a list and reports the chosen index and intent.
type Picker interface {
	Select(ctx context.Context, req Request) (Result, error)
}

// rofi exit codes: 1 means dismissed, 10 means the first custom key binding.
const (
	exitCancel    = 1
	exitAlternate = 10
)

// Option configures the rofi picker.
type Option func(*Rofi)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(r *Rofi) {
		if binary != "" {
			r.binary = binary
		}
	}
}

// WithAlternateKey overrides the key bound to the alternate (queue) exit.
func WithAlternateKey(key string) Option {
	return func(r *Rofi) {
		if key != "" {
			r.alternateKey = key
		}
	}
}

// WithExtraArgs appends user-configured arguments to every invocation.
func WithExtraArgs(args []string) Option {
	return func(r *Rofi) {
		r.extraArgs = append([]string(nil), args...)
	}
}

// Rofi drives rofi in dmenu mode. The item list is fully written to the
// child's stdin before stdout is read, so pipe buffering cannot deadlock.
type Rofi struct {
	binary       string
	alternateKey string
	extraArgs    []string
}

// NewRofi constructs a rofi picker using defaults.
func NewRofi(opts ...Option) *Rofi {
	r := &Rofi{binary: "rofi", alternateKey: "Ctrl+Return"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Select runs one picker interaction. An empty item list short-circuits to a
// cancelled result without spawning the chooser.
func (r *Rofi) Select(ctx context.Context, req Request) (Result, error) {
	if len(req.Items) == 0 {
		return Result{Index: -1}, nil
	}

	items := req.Items
	if req.AlignColumns {
		items = AlignColumns(items)
	}

	args := []string{
		"-i", "-dmenu", "-no-custom", "-format", "d",
		"-kb-custom-1", r.alternateKey,
		"-p", req.Prompt,
		"-selected-row", strconv.Itoa(req.Selected),
	}
	args = append(args, r.extraArgs...)

	cmd := commandContext(ctx, r.binary, args...)
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n"))
	out, err := cmd.Output()

	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("run %s: %w", r.binary, err)
		}
		code = exitErr.ExitCode()
	}
	if code == exitCancel {
		return Result{Index: -1}, nil
	}

	// Output format "d" is the 1-based row number of the choice.
	index, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || index < 1 || index > len(req.Items) {
		return Result{Index: -1}, nil
	}

	mode := ModeAccept
	if code == exitAlternate {
		mode = ModeAlternate
	}
	return Result{Index: index - 1, Mode: mode}, nil
}

var _ Picker = (*Rofi)(nil)
