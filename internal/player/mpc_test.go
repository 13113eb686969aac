package player

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func setHelperCommand(t *testing.T, mode string, captured *[][]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if captured != nil {
			*captured = append(*captured, append([]string(nil), args...))
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", fmt.Sprintf("MPC_HELPER_MODE=%s", mode))
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestAddOrdersFilterFields(t *testing.T) {
	var calls [][]string
	setHelperCommand(t, "silent", &calls)

	c := NewMPC()
	err := c.Add(context.Background(), Filter{
		Artist: "Boards of Canada",
		Album:  "Geogaddi",
		Title:  "Sunshine Recorder",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	want := []string{
		"findadd",
		"albumartist", "Boards of Canada",
		"album", "Geogaddi",
		"title", "Sunshine Recorder",
	}
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], want) {
		t.Fatalf("expected args %v, got %v", want, calls)
	}
}

func TestAddOmitsEmptyFields(t *testing.T) {
	var calls [][]string
	setHelperCommand(t, "silent", &calls)

	c := NewMPC()
	if err := c.Add(context.Background(), Filter{Artist: "Autechre"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	want := []string{"findadd", "albumartist", "Autechre"}
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], want) {
		t.Fatalf("expected args %v, got %v", want, calls)
	}
}

func TestAddRejectsEmptyFilter(t *testing.T) {
	var calls [][]string
	setHelperCommand(t, "silent", &calls)

	c := NewMPC()
	if err := c.Add(context.Background(), Filter{}); err == nil {
		t.Fatal("expected error for empty filter")
	}
	if len(calls) != 0 {
		t.Fatalf("empty filter must not spawn mpc, got %v", calls)
	}
}

func TestQueueTitlesSplitsLines(t *testing.T) {
	setHelperCommand(t, "playlist", nil)

	c := NewMPC()
	titles, err := c.QueueTitles(context.Background())
	if err != nil {
		t.Fatalf("queue titles: %v", err)
	}
	want := []string{"Ready Lets Go", "Music Is Math", "Beware the Friendly Stranger"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
}

func TestQueueTitlesEmptyQueue(t *testing.T) {
	setHelperCommand(t, "silent", nil)

	c := NewMPC()
	titles, err := c.QueueTitles(context.Background())
	if err != nil {
		t.Fatalf("queue titles: %v", err)
	}
	if titles != nil {
		t.Fatalf("expected nil for empty queue, got %v", titles)
	}
}

func TestPlayPositionIsOneBased(t *testing.T) {
	var calls [][]string
	setHelperCommand(t, "silent", &calls)

	c := NewMPC()
	if err := c.PlayPosition(context.Background(), 3); err != nil {
		t.Fatalf("play position: %v", err)
	}
	want := []string{"play", "3"}
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], want) {
		t.Fatalf("expected args %v, got %v", want, calls)
	}

	if err := c.PlayPosition(context.Background(), 0); err == nil {
		t.Fatal("expected error for position 0")
	}
}

func TestRunWrapsFailures(t *testing.T) {
	setHelperCommand(t, "fail", nil)

	c := NewMPC()
	if err := c.Clear(context.Background()); err == nil {
		t.Fatal("expected error from failing command")
	}
}

func TestLockCreatesFileAndReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "queue.lock")
	c := NewMPC(WithLockFile(path))

	release, err := c.Lock(context.Background())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	release()
}

func TestLockDisabledWithoutPath(t *testing.T) {
	c := NewMPC()
	release, err := c.Lock(context.Background())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	release()
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("MPC_HELPER_MODE") {
	case "silent":
		os.Exit(0)
	case "playlist":
		fmt.Println("Ready Lets Go")
		fmt.Println("Music Is Math")
		fmt.Println("Beware the Friendly Stranger")
		os.Exit(0)
	case "fail":
		os.Exit(1)
	default:
		os.Exit(2)
	}
}
