package loop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestRunTerminalQuitsOnQ(t *testing.T) {
	d := newTestDriver(t)
	var out bytes.Buffer

	err := RunTerminal(context.Background(), strings.NewReader("  q"), &out, d, TerminalOptions{
		TermSizeFunc: fixedSize(80, 24),
	})
	if err != nil {
		t.Fatalf("RunTerminal() error = %v", err)
	}

	if got := len(d.State().Beams); got != 2 {
		t.Errorf("beams = %d, want 2 (one per space before q)", got)
	}
	s := out.String()
	if !strings.HasPrefix(s, "\033[?25l") {
		t.Errorf("output should start by hiding the cursor: %q", s[:min(len(s), 16)])
	}
	if !strings.HasSuffix(s, "\033[?25h") {
		t.Error("output should end by showing the cursor")
	}
}

func TestRunTerminalStopsAtEOF(t *testing.T) {
	d := newTestDriver(t)

	err := RunTerminal(context.Background(), strings.NewReader("d"), io.Discard, d, TerminalOptions{
		TermSizeFunc: fixedSize(80, 24),
	})
	if err != nil {
		t.Fatalf("RunTerminal() error = %v", err)
	}
}

func TestRunTerminalContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := RunTerminal(ctx, r, &out, newTestDriver(t), TerminalOptions{TermSizeFunc: fixedSize(80, 24)})
	if err != nil {
		t.Fatalf("RunTerminal() error = %v", err)
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor should be restored on cancellation")
	}
}

func TestRunTerminalIdleTimeout(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	err := RunTerminal(context.Background(), r, io.Discard, newTestDriver(t), TerminalOptions{
		TermSizeFunc: fixedSize(80, 24),
		IdleTimeout:  50 * time.Millisecond,
	})
	if !errors.Is(err, ErrIdle) {
		t.Errorf("RunTerminal() error = %v, want ErrIdle", err)
	}
}

func TestRunTerminalSizeError(t *testing.T) {
	sizeErr := errors.New("not a terminal")

	err := RunTerminal(context.Background(), strings.NewReader(""), io.Discard, newTestDriver(t), TerminalOptions{
		TermSizeFunc: func() (int, int, error) { return 0, 0, sizeErr },
	})
	if !errors.Is(err, sizeErr) {
		t.Errorf("RunTerminal() error = %v, want wrapped size error", err)
	}
}
